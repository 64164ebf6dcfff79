package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartsched/smartsched/internal/model"
	"github.com/smartsched/smartsched/internal/repository/base"
)

type AppointmentRepository struct {
	*base.Repository
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{Repository: base.NewRepository(pool)}
}

// Insert persists a new appointment and assigns its identifier. The status
// defaults to Scheduled when unset.
func (r *AppointmentRepository) Insert(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	if appointment.Status == "" {
		appointment.Status = model.AppointmentStatusScheduled
	}

	query := `
		INSERT INTO appointments (client_id, employee_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.QueryRow(ctx, query,
		appointment.ClientID,
		appointment.EmployeeID,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Status,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	return appointment, nil
}

// HasConflicting reports whether any Scheduled appointment of the employee
// overlaps the half-open range [start, end). Ranges that only touch at a
// boundary do not conflict; Completed and Cancelled appointments never block.
func (r *AppointmentRepository) HasConflicting(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM appointments
			WHERE employee_id = $1
			  AND status = $2
			  AND start_time < $4
			  AND end_time > $3
		)
	`

	var conflict bool
	err := r.QueryRow(ctx, query, employeeID, model.AppointmentStatusScheduled, start, end).Scan(&conflict)
	if err != nil {
		return false, fmt.Errorf("check conflicting appointments: %w", err)
	}

	return conflict, nil
}

// UpdateStatus transitions a Scheduled appointment to the given status.
// Completed and Cancelled are terminal, so rows not currently Scheduled are
// left untouched and reported as an error.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	affected, err := r.ExecAffected(ctx, query, id, status, model.AppointmentStatusScheduled)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("appointment %d is not in scheduled status", id)
	}

	return nil
}

// CancelAllScheduledForClient cancels every Scheduled appointment of the
// client and returns how many rows were affected.
func (r *AppointmentRepository) CancelAllScheduledForClient(ctx context.Context, clientID int64) (int64, error) {
	query := `
		UPDATE appointments
		SET status = $2, updated_at = NOW()
		WHERE client_id = $1 AND status = $3
	`

	affected, err := r.ExecAffected(ctx, query, clientID,
		model.AppointmentStatusCancelled, model.AppointmentStatusScheduled)
	if err != nil {
		return 0, fmt.Errorf("cancel appointments for client: %w", err)
	}

	return affected, nil
}

// ListActiveForClient returns the client's Scheduled appointments ordered by
// start time.
func (r *AppointmentRepository) ListActiveForClient(ctx context.Context, clientID int64) ([]model.AppointmentSummary, error) {
	query := `
		SELECT id, start_time, end_time, employee_id
		FROM appointments
		WHERE client_id = $1 AND status = $2
		ORDER BY start_time
	`

	rows, err := r.Query(ctx, query, clientID, model.AppointmentStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("list active appointments: %w", err)
	}
	defer rows.Close()

	var summaries []model.AppointmentSummary
	for rows.Next() {
		var summary model.AppointmentSummary
		err := rows.Scan(&summary.ID, &summary.StartTime, &summary.EndTime, &summary.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active appointments: %w", err)
	}

	return summaries, nil
}
