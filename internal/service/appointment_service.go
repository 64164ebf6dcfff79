package service

import (
	"context"
	"fmt"

	"github.com/smartsched/smartsched/internal/model"
	"go.uber.org/zap"
)

// AppointmentService manages the lifecycle of persisted appointments.
// Appointments only move Scheduled → Completed or Scheduled → Cancelled and
// are never deleted.
type AppointmentService struct {
	store  Store
	logger *zap.Logger
}

func NewAppointmentService(store Store, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{store: store, logger: logger}
}

// Complete marks a scheduled appointment as completed.
func (s *AppointmentService) Complete(ctx context.Context, appointmentID int64) error {
	if err := s.store.UpdateAppointmentStatus(ctx, appointmentID, model.AppointmentStatusCompleted); err != nil {
		return fmt.Errorf("complete appointment: %w", err)
	}

	s.logger.Info("Appointment completed", zap.Int64("appointment_id", appointmentID))
	return nil
}

// Cancel marks a scheduled appointment as cancelled. Cancelled appointments
// no longer block new bookings.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID int64) error {
	if err := s.store.UpdateAppointmentStatus(ctx, appointmentID, model.AppointmentStatusCancelled); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.logger.Info("Appointment cancelled", zap.Int64("appointment_id", appointmentID))
	return nil
}

// ActiveForClient lists the client's Scheduled appointments.
func (s *AppointmentService) ActiveForClient(ctx context.Context, clientName string) ([]model.AppointmentSummary, error) {
	client, err := s.store.FindClientByName(ctx, clientName)
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	if client == nil {
		return nil, errClientNotFound(clientName)
	}

	summaries, err := s.store.ListActiveAppointmentsForClient(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("list active appointments: %w", err)
	}
	return summaries, nil
}

// CancelAllForClient cancels every Scheduled appointment of the client and
// returns how many were affected.
func (s *AppointmentService) CancelAllForClient(ctx context.Context, clientName string) (int64, error) {
	client, err := s.store.FindClientByName(ctx, clientName)
	if err != nil {
		return 0, fmt.Errorf("find client: %w", err)
	}
	if client == nil {
		return 0, errClientNotFound(clientName)
	}

	affected, err := s.store.CancelAllScheduledForClient(ctx, client.ID)
	if err != nil {
		return 0, fmt.Errorf("cancel appointments: %w", err)
	}

	s.logger.Info("Cancelled all scheduled appointments",
		zap.String("client", client.Name),
		zap.Int64("affected", affected),
	)
	return affected, nil
}
