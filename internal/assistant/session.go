package assistant

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smartsched/smartsched/internal/model"
)

// Step names the slot the engine last asked for.
type Step string

const (
	StepNone       Step = ""
	StepEmployee   Step = "employee"
	StepDate       Step = "date"
	StepTime       Step = "time"
	StepClientName Step = "client_name"
)

// Session accumulates the four booking slots across conversation turns. Each
// session belongs to exactly one conversation; the caller must not share a
// session between concurrent turns.
type Session struct {
	Employee   *model.Employee
	Date       time.Time // zero when not yet collected
	Time       *model.TimeOfDay
	ClientName string
	LastStep   Step
	Turns      int // completed turns, used for the session-start greeting rule
}

// Reset clears every slot and returns the session to its initial state.
func (s *Session) Reset() {
	s.Employee = nil
	s.Date = time.Time{}
	s.Time = nil
	s.ClientName = ""
	s.LastStep = StepNone
}

// Manager hands out sessions keyed by a caller-supplied identifier, isolating
// concurrent conversations from each other.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Session returns the session for key, creating it on first use.
func (m *Manager) Session(key string) *Session {
	m.mu.RLock()
	session, ok := m.sessions[key]
	m.mu.RUnlock()
	if ok {
		return session
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[key]; ok {
		return session
	}
	session = &Session{}
	m.sessions[key] = session
	return session
}

// NewSession creates a session under a generated key, for callers that have
// no natural conversation identifier.
func (m *Manager) NewSession() (string, *Session) {
	key := uuid.NewString()
	return key, m.Session(key)
}

// Remove drops the session for key.
func (m *Manager) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
}
