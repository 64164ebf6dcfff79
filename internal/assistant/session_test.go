package assistant

import (
	"testing"
	"time"

	"github.com/smartsched/smartsched/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerReturnsSameSessionForKey(t *testing.T) {
	manager := NewManager()

	first := manager.Session("chat-42")
	second := manager.Session("chat-42")
	assert.Same(t, first, second)
}

func TestManagerIsolatesSessions(t *testing.T) {
	manager := NewManager()

	a := manager.Session("chat-a")
	b := manager.Session("chat-b")
	require.NotSame(t, a, b)

	clock := model.TimeOfDay(14 * 60)
	a.Employee = &model.Employee{ID: 1, Name: "Laura Sanchez"}
	a.Date = time.Date(2025, time.June, 16, 0, 0, 0, 0, time.Local)
	a.Time = &clock

	// Progress in one conversation never leaks into another.
	assert.Nil(t, b.Employee)
	assert.True(t, b.Date.IsZero())
	assert.Nil(t, b.Time)
}

func TestManagerNewSessionGeneratesDistinctKeys(t *testing.T) {
	manager := NewManager()

	keyA, sessionA := manager.NewSession()
	keyB, sessionB := manager.NewSession()

	assert.NotEqual(t, keyA, keyB)
	assert.NotSame(t, sessionA, sessionB)
	assert.Same(t, sessionA, manager.Session(keyA))
}

func TestManagerRemove(t *testing.T) {
	manager := NewManager()

	session := manager.Session("chat-42")
	session.ClientName = "John Smith"

	manager.Remove("chat-42")

	fresh := manager.Session("chat-42")
	assert.NotSame(t, session, fresh)
	assert.Empty(t, fresh.ClientName)
}

func TestSessionReset(t *testing.T) {
	clock := model.TimeOfDay(9 * 60)
	session := &Session{
		Employee:   &model.Employee{ID: 1, Name: "Laura Sanchez"},
		Date:       time.Date(2025, time.June, 16, 0, 0, 0, 0, time.Local),
		Time:       &clock,
		ClientName: "John Smith",
		LastStep:   StepClientName,
		Turns:      3,
	}

	session.Reset()

	assert.Nil(t, session.Employee)
	assert.True(t, session.Date.IsZero())
	assert.Nil(t, session.Time)
	assert.Empty(t, session.ClientName)
	assert.Equal(t, StepNone, session.LastStep)
	assert.Equal(t, 3, session.Turns, "Reset clears slots, not the turn counter")
}
