package service

import (
	"context"
	"time"

	"github.com/smartsched/smartsched/internal/model"
)

// Store is the persistence collaborator consumed by the scheduling core.
// Name lookups are case-insensitive. Implementations must keep ListEmployees
// in a stable order; it decides ties when a message matches several employee
// names.
type Store interface {
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
	FindEmployeeByName(ctx context.Context, name string) (*model.Employee, error)

	FindClientByName(ctx context.Context, name string) (*model.Client, error)
	// UpsertClient returns the existing client on a name match, otherwise
	// inserts and assigns an identifier.
	UpsertClient(ctx context.Context, client *model.Client) (*model.Client, error)

	// HasConflictingAppointment reports whether any Scheduled appointment of
	// the employee overlaps [start, end).
	HasConflictingAppointment(ctx context.Context, employeeID int64, start, end time.Time) (bool, error)
	InsertAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status model.AppointmentStatus) error
	CancelAllScheduledForClient(ctx context.Context, clientID int64) (int64, error)
	ListActiveAppointmentsForClient(ctx context.Context, clientID int64) ([]model.AppointmentSummary, error)
}
