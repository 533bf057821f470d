package handlers

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/sashakmakeup/booking_bot/internal/formatting"
	appmodel "github.com/sashakmakeup/booking_bot/internal/model"
	"github.com/sashakmakeup/booking_bot/internal/schedule"
)

// isAdmin gates the owner-only commands on the configured admin chat.
func (h *Handlers) isAdmin(update *models.Update) bool {
	if update.Message == nil || h.adminChatID == 0 {
		return false
	}
	return update.Message.Chat.ID == h.adminChatID
}

// HandleBookings lists every stored booking for the admin.
func (h *Handlers) HandleBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.isAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID

	bookings, err := h.bookingRepo.List(ctx)
	if err != nil {
		h.logger.Error("Failed to list bookings", zap.Error(err))
		h.sendText(ctx, b, chatID, "Could not load bookings.")
		return
	}
	if len(bookings) == 0 {
		h.sendText(ctx, b, chatID, "No bookings yet.")
		return
	}

	var lines []string
	for _, rec := range bookings {
		lines = append(lines, fmt.Sprintf("%s %s | %s (%s) | %s <%s> | %s\nid: %s",
			rec.DateISO,
			formatting.FormatTimeRange(rec.StartTime, rec.EndTime),
			rec.ServiceName,
			formatting.FormatDuration(rec.DurationMinutes),
			rec.Name,
			rec.Email,
			rec.Status,
			rec.ID))
	}
	h.sendText(ctx, b, chatID, strings.Join(lines, "\n\n"))
}

// HandleCancelBooking cancels a booking by id: /cancelbooking <id>.
func (h *Handlers) HandleCancelBooking(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.isAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID

	parts := strings.Fields(update.Message.Text)
	if len(parts) != 2 {
		h.sendText(ctx, b, chatID, "Usage: /cancelbooking <booking id>")
		return
	}
	id := parts[1]

	if err := h.bookingRepo.UpdateStatus(ctx, id, appmodel.BookingStatusCancelled); err != nil {
		h.logger.Warn("Failed to cancel booking", zap.String("booking_id", id), zap.Error(err))
		h.sendText(ctx, b, chatID, fmt.Sprintf("Could not cancel %s: %v", id, err))
		return
	}

	h.logger.Info("Booking cancelled", zap.String("booking_id", id))
	h.sendText(ctx, b, chatID, fmt.Sprintf("Booking %s cancelled.", id))
}

// HandleSchedule renders the current week's bookings as an image.
func (h *Handlers) HandleSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.isAdmin(update) {
		return
	}
	chatID := update.Message.Chat.ID

	// Week starts on the most recent Sunday.
	now := time.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	fromISO := weekStart.Format("2006-01-02")
	toISO := weekStart.AddDate(0, 0, 6).Format("2006-01-02")

	bookings, err := h.bookingRepo.ListBetween(ctx, fromISO, toISO)
	if err != nil {
		h.logger.Error("Failed to load week bookings", zap.Error(err))
		h.sendText(ctx, b, chatID, "Could not load the schedule.")
		return
	}

	imageData, err := schedule.RenderWeek(bookings, weekStart, h.studio.WorkingHours)
	if err != nil {
		h.logger.Error("Failed to render schedule image", zap.Error(err))
		h.sendText(ctx, b, chatID, "Could not render the schedule.")
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "week.png", Data: bytes.NewReader(imageData)},
		Caption: fmt.Sprintf("Week of %s", fromISO),
	})
	if err != nil {
		h.logger.Error("Failed to send schedule image", zap.Error(err))
	}
}
