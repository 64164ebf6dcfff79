package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartsched/smartsched/internal/model"
)

// Store aggregates the repositories into the single persistence collaborator
// the scheduling core consumes (it satisfies service.Store).
type Store struct {
	Clients      *ClientRepository
	Employees    *EmployeeRepository
	Appointments *AppointmentRepository
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Clients:      NewClientRepository(pool),
		Employees:    NewEmployeeRepository(pool),
		Appointments: NewAppointmentRepository(pool),
	}
}

func (s *Store) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	return s.Employees.List(ctx)
}

func (s *Store) FindEmployeeByName(ctx context.Context, name string) (*model.Employee, error) {
	return s.Employees.FindByName(ctx, name)
}

func (s *Store) FindClientByName(ctx context.Context, name string) (*model.Client, error) {
	return s.Clients.FindByName(ctx, name)
}

func (s *Store) UpsertClient(ctx context.Context, client *model.Client) (*model.Client, error) {
	return s.Clients.Upsert(ctx, client)
}

func (s *Store) HasConflictingAppointment(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	return s.Appointments.HasConflicting(ctx, employeeID, start, end)
}

func (s *Store) InsertAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	return s.Appointments.Insert(ctx, appointment)
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id int64, status model.AppointmentStatus) error {
	return s.Appointments.UpdateStatus(ctx, id, status)
}

func (s *Store) CancelAllScheduledForClient(ctx context.Context, clientID int64) (int64, error) {
	return s.Appointments.CancelAllScheduledForClient(ctx, clientID)
}

func (s *Store) ListActiveAppointmentsForClient(ctx context.Context, clientID int64) ([]model.AppointmentSummary, error) {
	return s.Appointments.ListActiveForClient(ctx, clientID)
}
