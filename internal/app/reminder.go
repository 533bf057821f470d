package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/sashakmakeup/booking_bot/internal/formatting"
	"github.com/sashakmakeup/booking_bot/internal/model"
	"github.com/sashakmakeup/booking_bot/internal/repository"
)

// Reminder runs the background task that tells the admin about tomorrow's
// confirmed appointments.
type Reminder struct {
	bot         *bot.Bot
	bookingRepo *repository.BookingRepository
	adminChatID int64
	logger      *zap.Logger
	stopChan    chan struct{}
}

// NewReminder creates the reminder task.
func NewReminder(b *bot.Bot, bookingRepo *repository.BookingRepository, adminChatID int64, logger *zap.Logger) *Reminder {
	return &Reminder{
		bot:         b,
		bookingRepo: bookingRepo,
		adminChatID: adminChatID,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Start launches the daily reminder loop. Without an admin chat configured it
// does nothing.
func (r *Reminder) Start(ctx context.Context) {
	if r.adminChatID == 0 {
		r.logger.Info("Admin chat not configured, reminders disabled")
		return
	}

	r.logger.Info("Starting reminder task")
	go r.run(ctx)
}

// Stop stops the reminder loop.
func (r *Reminder) Stop() {
	close(r.stopChan)
}

func (r *Reminder) run(ctx context.Context) {
	// First pass right away, then daily.
	r.sendReminders(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sendReminders(ctx)
		case <-r.stopChan:
			r.logger.Info("Reminder task stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Reminder task cancelled")
			return
		}
	}
}

// sendReminders notifies the admin about tomorrow's confirmed bookings.
func (r *Reminder) sendReminders(ctx context.Context) {
	tomorrowDate := time.Now().AddDate(0, 0, 1)
	tomorrow := tomorrowDate.Format("2006-01-02")

	bookings, err := r.bookingRepo.ListByDate(ctx, tomorrow)
	if err != nil {
		r.logger.Error("Failed to load bookings for reminders", zap.Error(err))
		return
	}

	var lines []string
	for _, b := range bookings {
		if b.Status != model.BookingStatusConfirmed {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s — %s (%s)",
			formatting.FormatTimeRange(b.StartTime, b.EndTime), b.ServiceName, b.Name, b.Email))
	}
	if len(lines) == 0 {
		return
	}

	text := fmt.Sprintf("Appointments tomorrow, %s:\n%s",
		formatting.FormatDateWithWeekday(tomorrowDate), strings.Join(lines, "\n"))
	_, err = r.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: r.adminChatID,
		Text:   text,
	})
	if err != nil {
		r.logger.Error("Failed to send reminder", zap.Error(err))
		return
	}

	r.logger.Info("Sent reminder", zap.String("date", tomorrow), zap.Int("bookings", len(lines)))
}
