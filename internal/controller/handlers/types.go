package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/sashakmakeup/booking_bot/internal/agent"
	"github.com/sashakmakeup/booking_bot/internal/config"
	"github.com/sashakmakeup/booking_bot/internal/controller/state"
	"github.com/sashakmakeup/booking_bot/internal/repository"
)

// Handlers holds everything the bot handlers need to drive the dialogue.
type Handlers struct {
	engine      *agent.Engine
	bookingRepo *repository.BookingRepository
	stateRepo   *repository.StateRepository
	states      *state.Manager
	studio      *config.Studio
	adminChatID int64
	logger      *zap.Logger
}

// NewHandlers creates the command and message handlers.
func NewHandlers(
	engine *agent.Engine,
	bookingRepo *repository.BookingRepository,
	stateRepo *repository.StateRepository,
	states *state.Manager,
	studio *config.Studio,
	adminChatID int64,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		engine:      engine,
		bookingRepo: bookingRepo,
		stateRepo:   stateRepo,
		states:      states,
		studio:      studio,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// sendText sends a plain message, logging delivery failures.
func (h *Handlers) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
