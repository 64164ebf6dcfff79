package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleTextMessage feeds a non-command message into the conversation engine.
// Sessions are keyed by chat id, so parallel chats never share slot state.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := update.Message.Text
	if strings.HasPrefix(text, "/") {
		// Commands are handled by their own handlers; the catch-all prefix
		// match sees them too.
		return
	}

	chatID := update.Message.Chat.ID
	session := h.sessions.Session(sessionKey(chatID))

	h.logger.Debug("Processing conversation turn",
		zap.Int64("chat_id", chatID),
		zap.Int("turn", session.Turns),
	)

	reply := h.engine.ProcessTurn(ctx, session, text)
	h.sendText(ctx, b, chatID, reply)
}
