package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	appmodel "github.com/sashakmakeup/booking_bot/internal/model"
)

// HandleTextMessage routes every free-text message through the dialogue
// engine: load state, reply, persist the next state.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	h.runTurn(ctx, b, update.Message.Chat.ID, update.Message.Text)
}

// runTurn executes one engine turn for a chat and delivers the replies.
func (h *Handlers) runTurn(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.logger.Info("Incoming message", zap.Int64("chat_id", chatID))

	st := h.loadState(ctx, chatID)

	// Cosmetic typing indicator while the reply is prepared.
	b.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})

	msgs, next, err := h.engine.Reply(ctx, text, st)
	if err != nil {
		h.logger.Error("Engine turn failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendText(ctx, b, chatID, "Something went wrong on our side. Please try again.")
		return
	}

	for _, m := range msgs {
		h.sendText(ctx, b, chatID, m.Content)
	}

	h.saveState(ctx, chatID, next)
}

// loadState pulls the conversation state from the cache or the repository.
// Any load problem starts the conversation fresh rather than surfacing.
func (h *Handlers) loadState(ctx context.Context, chatID int64) appmodel.AgentState {
	if st, ok := h.states.Get(chatID); ok {
		return st
	}

	st, err := h.stateRepo.Get(ctx, chatID)
	if err != nil {
		h.logger.Warn("Failed to load agent state, starting fresh",
			zap.Int64("chat_id", chatID), zap.Error(err))
		return appmodel.NewAgentState()
	}
	return st
}

// saveState writes the next state to the cache and the repository.
func (h *Handlers) saveState(ctx context.Context, chatID int64, st appmodel.AgentState) {
	h.states.Set(chatID, st)

	if err := h.stateRepo.Save(ctx, chatID, st); err != nil {
		h.logger.Error("Failed to persist agent state",
			zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
