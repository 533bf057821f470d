package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	appmodel "github.com/sashakmakeup/booking_bot/internal/model"
)

// HandleStart greets a new chat without advancing the dialogue.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendText(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
		"Hi! I'm %s's booking assistant. I can help you choose a service, "+
			"check availability, and confirm your appointment. Say 'book' to begin.\n\n"+
			"%s — %s",
		h.studio.OwnerName, h.studio.BusinessName, h.studio.Location))
}

// HandleBook starts the booking flow, mirroring the "Book now" quick action.
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.runTurn(ctx, b, update.Message.Chat.ID, "book")
}

// HandleServices lists the catalog, mirroring the "See services" quick action.
func (h *Handlers) HandleServices(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.runTurn(ctx, b, update.Message.Chat.ID, "services")
}

// HandlePrices lists the rates, mirroring the "See prices" quick action.
func (h *Handlers) HandlePrices(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.runTurn(ctx, b, update.Message.Chat.ID, "prices")
}

// HandleHelp answers with the assistant's help text.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.runTurn(ctx, b, update.Message.Chat.ID, "help")
}

// HandleReset abandons the current conversation and starts over.
func (h *Handlers) HandleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.saveState(ctx, chatID, appmodel.NewAgentState())
	h.sendText(ctx, b, chatID, "Okay, starting over. Say 'book' whenever you're ready.")
}
