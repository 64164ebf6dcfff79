package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smartsched/smartsched/internal/model"
	"github.com/smartsched/smartsched/internal/service"
	"go.uber.org/zap"
)

// DefaultAppointmentLength is the booking length the conversational flow
// assumes; the scheduling core itself accepts any end > start.
const DefaultAppointmentLength = time.Hour

// resetTriggers force a full session reset from any state.
var resetTriggers = []string{"start", "restart", "reset", "nuevo", "empezar de nuevo"}

// greetings short-circuit to the welcome message, but only on a session's
// very first turn.
var greetings = []string{"hello", "hi", "hey", "hola"}

const genericFailureReply = "❌ Something went wrong. Please try again."

// Engine is the slot-filling conversation state machine. Every turn first
// runs all extractors over the whole message, then either asks for the first
// missing slot (employee → date → time → client name) or attempts the
// booking.
type Engine struct {
	store     service.Store
	scheduler *service.SchedulingService
	logger    *zap.Logger
	now       func() time.Time
}

func NewEngine(store service.Store, scheduler *service.SchedulingService, logger *zap.Logger) *Engine {
	return &Engine{
		store:     store,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
	}
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// ProcessTurn consumes one user message and returns the assistant's reply,
// mutating the session in place.
func (e *Engine) ProcessTurn(ctx context.Context, session *Session, text string) string {
	defer func() { session.Turns++ }()

	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if trimmed == "" || (session.Turns == 0 && containsAny(lower, greetings)) {
		session.Reset()
		return e.welcome(ctx)
	}

	if containsAny(lower, resetTriggers) {
		session.Reset()
		return e.welcome(ctx)
	}

	roster, err := e.store.ListEmployees(ctx)
	if err != nil {
		e.logger.Error("Failed to list employees", zap.Error(err))
		return genericFailureReply
	}

	e.extract(session, trimmed, lower, roster)

	if reply, asked := e.askForMissing(session, roster); asked {
		return reply
	}

	return e.book(ctx, session)
}

// extract opportunistically fills whichever slots the message mentions,
// regardless of which slot was last asked for.
func (e *Engine) extract(session *Session, text, lower string, roster []*model.Employee) {
	if employee := FindEmployeeIn(text, roster); employee != nil {
		session.Employee = employee
	}

	if date, ok := ExtractDate(lower, e.now()); ok {
		session.Date = date
	}

	if clock, ok := ExtractTime(lower); ok {
		session.Time = &clock
	}

	if name, ok := ExtractClientName(text); ok {
		// A "client name" equal to the selected employee is almost certainly
		// the employee's name read twice out of one message.
		if session.Employee != nil && Normalize(name) == Normalize(session.Employee.Name) {
			return
		}
		session.ClientName = name
	}
}

// askForMissing emits the question for the first missing slot in fixed
// priority order, or reports that the session is ready to book.
func (e *Engine) askForMissing(session *Session, roster []*model.Employee) (string, bool) {
	if session.Employee == nil {
		session.LastStep = StepEmployee
		return fmt.Sprintf(
			"Which employee would you like to book with? Available employees are: %s",
			rosterLine(roster),
		), true
	}

	if session.Date.IsZero() {
		session.LastStep = StepDate
		return fmt.Sprintf(
			"What date would you prefer for the appointment with %s? (e.g., 'tomorrow', 'June 15', '15/06')",
			session.Employee.Name,
		), true
	}

	if session.Time == nil {
		session.LastStep = StepTime
		return fmt.Sprintf(
			"What time would you like on %s with %s? (e.g., '14:00', '2pm')",
			session.Date.Format("02/01/2006"), session.Employee.Name,
		), true
	}

	if session.ClientName == "" {
		session.LastStep = StepClientName
		return "What's the client's name for the appointment?", true
	}

	return "", false
}

// book runs the pre-check and the validated booking. Rejections clear only
// the slot they are attributable to: an unavailable or conflicting time drops
// the time and keeps the date, anything else drops both.
func (e *Engine) book(ctx context.Context, session *Session) string {
	start := session.Time.At(session.Date)
	end := start.Add(DefaultAppointmentLength)

	available, err := e.scheduler.CheckAvailability(ctx, session.Employee, start, end)
	if err != nil {
		e.logger.Error("Availability pre-check failed", zap.Error(err))
		available = false
	}
	if !available {
		reply := fmt.Sprintf(
			"❌ %s is not available on %s at %s. Please select another time.",
			session.Employee.Name, session.Date.Format("02/01/2006"), session.Time,
		)
		session.Time = nil
		session.LastStep = StepTime
		return reply
	}

	// The validator requires an existing client; the conversational flow
	// creates it here so first-time clients can book in one pass.
	if _, err := e.store.UpsertClient(ctx, &model.Client{Name: session.ClientName}); err != nil {
		e.logger.Error("Failed to upsert client", zap.Error(err), zap.String("client", session.ClientName))
		session.Date = time.Time{}
		session.Time = nil
		return genericFailureReply
	}

	message, err := e.scheduler.Schedule(ctx, session.ClientName, session.Employee.Name, start, end)
	if err != nil {
		switch service.ReasonOf(err) {
		case service.ReasonOutsideWorkingHours, service.ReasonTimeSlotConflict:
			session.Time = nil
			session.LastStep = StepTime
		default:
			session.Date = time.Time{}
			session.Time = nil
			session.LastStep = StepDate
		}
		return "❌ " + err.Error()
	}

	session.Reset()
	return "✅ " + message + " The appointment has been confirmed!"
}

func rosterLine(roster []*model.Employee) string {
	entries := make([]string, 0, len(roster))
	for _, employee := range roster {
		entries = append(entries, fmt.Sprintf("%s (%s)", employee.Name, employee.Role))
	}
	return strings.Join(entries, ", ")
}

func (e *Engine) welcome(ctx context.Context) string {
	roster, err := e.store.ListEmployees(ctx)
	if err != nil {
		e.logger.Error("Failed to list employees", zap.Error(err))
		return genericFailureReply
	}

	return fmt.Sprintf(
		"Hello! I'm your scheduling assistant. I can help you book appointments. "+
			"Our employees are: %s. Who would you like to schedule an appointment with?",
		rosterLine(roster),
	)
}
