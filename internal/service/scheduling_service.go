package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/smartsched/smartsched/internal/model"
	"go.uber.org/zap"
)

// SchedulingService decides whether a proposed appointment is legal and
// persists it when it is. Validation runs in a fixed order: client lookup,
// employee lookup, availability containment, conflict check, insert.
type SchedulingService struct {
	store  Store
	logger *zap.Logger

	// The availability check, conflict check and insert are separate store
	// round-trips. Serializing them per employee closes the window in which
	// two concurrent bookings for the same employee both pass validation.
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewSchedulingService(store Store, logger *zap.Logger) *SchedulingService {
	return &SchedulingService{
		store:  store,
		logger: logger,
		locks:  make(map[int64]*sync.Mutex),
	}
}

func (s *SchedulingService) lockFor(employeeID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[employeeID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[employeeID] = lock
	}
	return lock
}

// Schedule validates and books an appointment, returning a confirmation
// message on success. Failures are *SchedulingError values whose message is
// meant for the end user. The client must already exist; the conversational
// caller upserts it beforehand.
func (s *SchedulingService) Schedule(ctx context.Context, clientName, employeeName string, start, end time.Time) (string, error) {
	if !end.After(start) {
		return "", errMalformedInput("The appointment end time must be after its start time.")
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return "", errMalformedInput("The appointment must start and end on the same day.")
	}

	client, err := s.store.FindClientByName(ctx, clientName)
	if err != nil {
		return "", fmt.Errorf("find client: %w", err)
	}
	if client == nil {
		return "", errClientNotFound(clientName)
	}

	employee, err := s.store.FindEmployeeByName(ctx, employeeName)
	if err != nil {
		return "", fmt.Errorf("find employee: %w", err)
	}
	if employee == nil {
		return "", errEmployeeNotFound(employeeName)
	}

	lock := s.lockFor(employee.ID)
	lock.Lock()
	defer lock.Unlock()

	if !employee.Availability.Covers(start, end) {
		weekday := start.Weekday()
		return "", errOutsideWorkingHours(employee, weekday, employee.Availability.Intervals(weekday))
	}

	conflict, err := s.store.HasConflictingAppointment(ctx, employee.ID, start, end)
	if err != nil {
		return "", fmt.Errorf("check conflicts: %w", err)
	}
	if conflict {
		return "", errTimeSlotConflict(employee)
	}

	appointment := &model.Appointment{
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     model.AppointmentStatusScheduled,
	}

	appointment, err = s.store.InsertAppointment(ctx, appointment)
	if err != nil {
		return "", errGeneric(err)
	}

	s.logger.Info("Appointment scheduled",
		zap.Int64("appointment_id", appointment.ID),
		zap.String("client", client.Name),
		zap.String("employee", employee.Name),
		zap.Time("start", start),
		zap.Time("end", end),
	)

	return fmt.Sprintf(
		"Appointment scheduled for %s with %s on %s.",
		client.Name, employee.Name, start.Format("Monday 02/01/2006 at 15:04"),
	), nil
}

// CheckAvailability is the pre-flight probe: true when [start, end) lies
// within the employee's working hours and no Scheduled appointment overlaps.
func (s *SchedulingService) CheckAvailability(ctx context.Context, employee *model.Employee, start, end time.Time) (bool, error) {
	if !employee.Availability.Covers(start, end) {
		return false, nil
	}

	conflict, err := s.store.HasConflictingAppointment(ctx, employee.ID, start, end)
	if err != nil {
		return false, fmt.Errorf("check conflicts: %w", err)
	}
	return !conflict, nil
}
