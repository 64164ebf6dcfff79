package handlers

import (
	"github.com/smartsched/smartsched/internal/assistant"
	"github.com/smartsched/smartsched/internal/service"
	"go.uber.org/zap"
)

// Handlers bundles the dependencies of all command handlers.
type Handlers struct {
	store        service.Store
	appointments *service.AppointmentService
	engine       *assistant.Engine
	sessions     *assistant.Manager
	logger       *zap.Logger
}

func NewHandlers(
	store service.Store,
	appointments *service.AppointmentService,
	engine *assistant.Engine,
	sessions *assistant.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		store:        store,
		appointments: appointments,
		engine:       engine,
		sessions:     sessions,
		logger:       logger,
	}
}
