package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/smartsched/smartsched/internal/model"
	"github.com/smartsched/smartsched/internal/service"
	"go.uber.org/zap"
)

// sessionKey derives the conversation session key from the chat.
func sessionKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// commandArgument returns the text after the command itself, e.g. the client
// name in "/appointments Ana Lopez".
func commandArgument(text string) string {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (h *Handlers) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

// HandleStart resets the chat's session and greets with the employee roster.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	session := h.sessions.Session(sessionKey(chatID))
	session.Reset()

	reply := h.engine.ProcessTurn(ctx, session, "")
	h.sendText(ctx, b, chatID, reply+
		"\n\nYou can also use:\n"+
		"/employees - Employees and their working hours\n"+
		"/schedule <employee> - Weekly availability image\n"+
		"/appointments <client> - A client's scheduled appointments\n"+
		"/cancelall <client> - Cancel all of a client's appointments\n"+
		"/help - Full reference")
}

// HandleHelp prints the command reference.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Command reference:\n\n" +
		"/start - Start over with a fresh conversation\n" +
		"/employees - List employees and their working hours\n" +
		"/schedule <employee> - Weekly availability as an image\n" +
		"/appointments <client> - List a client's scheduled appointments\n" +
		"/cancelall <client> - Cancel all of a client's scheduled appointments\n\n" +
		"To book, just tell me what you need, e.g.\n" +
		"\"Book Laura Sanchez tomorrow at 2pm for John Smith\" - " +
		"I'll ask for anything that's missing."

	h.sendText(ctx, b, update.Message.Chat.ID, helpText)
}

// formatEmployees renders the roster with roles and weekly hours, weekdays
// Monday-first.
func formatEmployees(employees []*model.Employee) string {
	var sb strings.Builder
	sb.WriteString("👥 Our employees:\n")
	for _, employee := range employees {
		sb.WriteString(fmt.Sprintf("\n%s — %s\n", employee.Name, employee.Role))
		if len(employee.Availability) == 0 {
			sb.WriteString("  (no working hours configured)\n")
			continue
		}
		for _, weekday := range weekdayOrder {
			intervals := employee.Availability.Intervals(weekday)
			if len(intervals) == 0 {
				continue
			}
			specs := make([]string, 0, len(intervals))
			for _, interval := range intervals {
				specs = append(specs, interval.String())
			}
			sb.WriteString(fmt.Sprintf("  %s: %s\n", weekday, strings.Join(specs, ", ")))
		}
	}
	return sb.String()
}

// HandleEmployees lists the roster with roles and weekly hours.
func (h *Handlers) HandleEmployees(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	employees, err := h.store.ListEmployees(ctx)
	if err != nil {
		h.logger.Error("Failed to list employees", zap.Error(err))
		h.sendText(ctx, b, chatID, "❌ Could not load the employee list. Please try again.")
		return
	}

	if len(employees) == 0 {
		h.sendText(ctx, b, chatID, "No employees are configured yet.")
		return
	}

	h.sendText(ctx, b, chatID, formatEmployees(employees))
}

// HandleAppointments lists a client's scheduled appointments.
func (h *Handlers) HandleAppointments(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	clientName := commandArgument(update.Message.Text)
	if clientName == "" {
		h.sendText(ctx, b, chatID, "Usage: /appointments <client name>")
		return
	}

	summaries, err := h.appointments.ActiveForClient(ctx, clientName)
	if err != nil {
		if service.ReasonOf(err) == service.ReasonClientNotFound {
			h.sendText(ctx, b, chatID, "❌ "+err.Error())
			return
		}
		h.logger.Error("Failed to list appointments", zap.Error(err), zap.String("client", clientName))
		h.sendText(ctx, b, chatID, "❌ Could not load the appointments. Please try again.")
		return
	}

	if len(summaries) == 0 {
		h.sendText(ctx, b, chatID, fmt.Sprintf("%s has no scheduled appointments.", clientName))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 Scheduled appointments for %s:\n\n", clientName))
	for _, summary := range summaries {
		sb.WriteString(fmt.Sprintf(
			"#%d: %s — %s\n",
			summary.ID,
			summary.StartTime.Format("Monday 02/01/2006 15:04"),
			summary.EndTime.Format("15:04"),
		))
	}

	h.sendText(ctx, b, chatID, sb.String())
}

// HandleCancelAll cancels every scheduled appointment of a client.
func (h *Handlers) HandleCancelAll(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	clientName := commandArgument(update.Message.Text)
	if clientName == "" {
		h.sendText(ctx, b, chatID, "Usage: /cancelall <client name>")
		return
	}

	affected, err := h.appointments.CancelAllForClient(ctx, clientName)
	if err != nil {
		if service.ReasonOf(err) == service.ReasonClientNotFound {
			h.sendText(ctx, b, chatID, "❌ "+err.Error())
			return
		}
		h.logger.Error("Failed to cancel appointments", zap.Error(err), zap.String("client", clientName))
		h.sendText(ctx, b, chatID, "❌ Could not cancel the appointments. Please try again.")
		return
	}

	if affected == 0 {
		h.sendText(ctx, b, chatID, fmt.Sprintf("%s had no scheduled appointments to cancel.", clientName))
		return
	}

	h.sendText(ctx, b, chatID, fmt.Sprintf("✅ Cancelled %d appointment(s) for %s.", affected, clientName))
}
