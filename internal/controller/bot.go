package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/smartsched/smartsched/internal/assistant"
	"github.com/smartsched/smartsched/internal/controller/handlers"
	"github.com/smartsched/smartsched/internal/service"
	"go.uber.org/zap"
)

// BotController wires the Telegram surface to the scheduling core. It is thin
// presentation glue: every piece of business logic lives in the services and
// the assistant engine.
type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	store service.Store,
	scheduler *service.SchedulingService,
	appointments *service.AppointmentService,
	logger *zap.Logger,
) *BotController {
	engine := assistant.NewEngine(store, scheduler, logger)
	sessions := assistant.NewManager()

	cmdHandlers := handlers.NewHandlers(store, appointments, engine, sessions, logger)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers registers all command handlers.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/employees", bot.MatchTypeExact, c.handlers.HandleEmployees)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/appointments", bot.MatchTypePrefix, c.handlers.HandleAppointments)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancelall", bot.MatchTypePrefix, c.handlers.HandleCancelAll)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/schedule", bot.MatchTypePrefix, c.handlers.HandleSchedule)

	// Everything that is not a command is a conversation turn.
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	return c.setCommands(ctx)
}

// setCommands installs the command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start a new conversation"},
		{Command: "help", Description: "❓ Command reference"},
		{Command: "employees", Description: "👥 List employees and their hours"},
		{Command: "appointments", Description: "📅 List a client's appointments"},
		{Command: "cancelall", Description: "🗑 Cancel all of a client's appointments"},
		{Command: "schedule", Description: "🗓 Weekly availability image"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start runs the bot until the context is cancelled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
