package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppointmentLifecycle(t *testing.T) {
	store := newTestStore(t)
	scheduler := NewSchedulingService(store, zap.NewNop())
	appointments := NewAppointmentService(store, zap.NewNop())
	ctx := context.Background()

	_, err := scheduler.Schedule(ctx, "Ana Lopez", "Carlos Gomez", onThursday(9, 0), onThursday(10, 0))
	require.NoError(t, err)
	_, err = scheduler.Schedule(ctx, "Ana Lopez", "Carlos Gomez", onThursday(11, 0), onThursday(12, 0))
	require.NoError(t, err)

	active, err := appointments.ActiveForClient(ctx, "Ana Lopez")
	require.NoError(t, err)
	require.Len(t, active, 2)

	require.NoError(t, appointments.Complete(ctx, active[0].ID))

	active, err = appointments.ActiveForClient(ctx, "ana lopez")
	require.NoError(t, err)
	assert.Len(t, active, 1, "completed appointments are no longer active")

	affected, err := appointments.CancelAllForClient(ctx, "Ana Lopez")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	active, err = appointments.ActiveForClient(ctx, "Ana Lopez")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAppointmentServiceUnknownClient(t *testing.T) {
	store := newTestStore(t)
	appointments := NewAppointmentService(store, zap.NewNop())
	ctx := context.Background()

	_, err := appointments.ActiveForClient(ctx, "Nobody Here")
	require.Error(t, err)
	assert.Equal(t, ReasonClientNotFound, ReasonOf(err))

	_, err = appointments.CancelAllForClient(ctx, "Nobody Here")
	require.Error(t, err)
	assert.Equal(t, ReasonClientNotFound, ReasonOf(err))
}
