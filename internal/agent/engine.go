package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sashakmakeup/booking_bot/internal/config"
	"github.com/sashakmakeup/booking_bot/internal/formatting"
	"github.com/sashakmakeup/booking_bot/internal/model"
)

// Fallback duration when a pending booking somehow carries none.
const defaultDurationMinutes = 60

// BookingStore is the slice of the booking repository the engine consumes.
// The engine appends and reads, it never mutates existing records.
type BookingStore interface {
	Append(ctx context.Context, rec model.BookingRecord) error
	ListByDate(ctx context.Context, dateISO string) ([]model.BookingRecord, error)
}

// Engine drives the scripted booking dialogue. It holds only immutable
// collaborators; conversation state travels through Reply explicitly, so the
// same inputs and store contents always produce the same outputs.
type Engine struct {
	studio *config.Studio
	store  BookingStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewEngine creates a dialogue engine for the given studio and store.
func NewEngine(studio *config.Studio, store BookingStore, logger *zap.Logger) *Engine {
	return &Engine{
		studio: studio,
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// transcript collects the assistant messages emitted during one turn.
type transcript struct {
	engine *Engine
	msgs   []model.ChatMessage
}

func (t *transcript) say(content string) {
	t.msgs = append(t.msgs, model.ChatMessage{
		ID:        t.engine.newID(),
		Role:      model.RoleAssistant,
		Content:   content,
		CreatedAt: t.engine.now(),
	})
}

// Reply processes one line of user input against the current state and
// returns the assistant messages plus the next state. Invalid user input is
// never an error: the step stays put and a clarifying message is emitted.
// The returned error covers store I/O only.
func (e *Engine) Reply(ctx context.Context, text string, st model.AgentState) ([]model.ChatMessage, model.AgentState, error) {
	t := &transcript{engine: e}
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	// Global intents answer in place and never advance the step.
	switch {
	case containsAny(lower, "price", "cost", "how much"):
		t.say("Here are current rates:\n" + ServicesSummary(e.studio.Services))
		st.LastPrompt = e.promptFor(st.Step, st)
		return t.msgs, st, nil
	case containsAny(lower, "service", "menu", "what do you offer"):
		t.say("Available services:\n" + ServicesSummary(e.studio.Services))
		st.LastPrompt = e.promptFor(st.Step, st)
		return t.msgs, st, nil
	case lower == "help":
		t.say("I can help you choose a service, check availability, and secure a booking. Say 'book' to begin.")
		return t.msgs, st, nil
	}

	// "book" (re)starts the flow from any step; at idle any text does.
	if st.Step == model.StepIdle || strings.Contains(lower, "book") {
		return t.msgs, e.startBooking(t, st), nil
	}

	switch st.Step {
	case model.StepAskService:
		return t.msgs, e.handleAskService(t, lower, st), nil
	case model.StepAskDate:
		return t.msgs, e.handleAskDate(t, trimmed, st), nil
	case model.StepAskTime:
		next, err := e.handleAskTime(ctx, t, trimmed, st)
		return t.msgs, next, err
	case model.StepAskName:
		return t.msgs, e.handleAskName(t, trimmed, st), nil
	case model.StepAskEmail:
		return t.msgs, e.handleAskEmail(t, trimmed, st), nil
	case model.StepAskPhone:
		return t.msgs, e.handleAskPhone(t, trimmed, lower, st), nil
	case model.StepConfirm:
		next, err := e.handleConfirm(ctx, t, lower, st)
		return t.msgs, next, err
	case model.StepCompleted, model.StepIdle:
		t.say("I'm here to help you book — say 'book' to start.")
		return t.msgs, st, nil
	default:
		// Unknown step in round-tripped state: start the conversation over.
		e.logger.Warn("Unknown dialogue step, resetting state", zap.String("step", string(st.Step)))
		t.say("I'm here to help you book — say 'book' to start.")
		return t.msgs, model.NewAgentState(), nil
	}
}

// startBooking greets the customer and moves to the service question.
func (e *Engine) startBooking(t *transcript, st model.AgentState) model.AgentState {
	st.Step = model.StepAskService
	t.say(fmt.Sprintf("Hi! I'm %s's assistant. Let's get you booked at %s.",
		e.studio.OwnerName, e.studio.BusinessName))
	return e.prompt(t, st)
}

// prompt emits the question for the current step and records it as the last
// prompt shown.
func (e *Engine) prompt(t *transcript, st model.AgentState) model.AgentState {
	st.LastPrompt = e.promptFor(st.Step, st)
	t.say(st.LastPrompt)
	return st
}

func (e *Engine) handleAskService(t *transcript, lower string, st model.AgentState) model.AgentState {
	svc, ok := ResolveService(e.studio.Services, lower)
	if !ok {
		t.say("I didn't catch the service. Please choose from the list above.")
		return e.prompt(t, st)
	}

	st.Pending.ServiceID = svc.ID
	st.Pending.ServiceName = svc.Name
	st.Pending.DurationMinutes = svc.DurationMinutes
	st.Step = model.StepAskDate
	t.say(fmt.Sprintf("Lovely — %s.", svc.Name))
	return e.prompt(t, st)
}

func (e *Engine) handleAskDate(t *transcript, text string, st model.AgentState) model.AgentState {
	dateISO, ok := ParseDate(text, e.now())
	if !ok {
		t.say("Please provide a date like 2025-11-05 or Nov 5.")
		return st
	}
	if e.isBlackout(dateISO) {
		t.say("Sorry, that date is unavailable. Try another date?")
		return st
	}
	if d, err := time.Parse("2006-01-02", dateISO); err == nil && !e.studio.WorkingHours.IsOpenDay(int(d.Weekday())) {
		t.say(fmt.Sprintf("We're closed on %ss. Could you pick another day?", d.Weekday()))
		return st
	}

	st.Pending.DateISO = dateISO
	st.Step = model.StepAskTime
	t.say(fmt.Sprintf("Thanks — %s.", dateISO))
	return e.prompt(t, st)
}

func (e *Engine) handleAskTime(ctx context.Context, t *transcript, text string, st model.AgentState) (model.AgentState, error) {
	start, ok := ParseTime(text)
	if !ok {
		t.say("Please share a time like 2pm or 14:30.")
		return st, nil
	}

	duration := st.Pending.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	end := AddMinutes(start, duration)

	if !WithinWorkingHours(e.studio.WorkingHours, st.Pending.DateISO, start, end) {
		t.say(fmt.Sprintf("That time is outside working hours (%s). Please suggest another time.",
			formatting.FormatTimeRange(e.studio.WorkingHours.Open, e.studio.WorkingHours.Close)))
		return st, nil
	}

	existing, err := e.store.ListByDate(ctx, st.Pending.DateISO)
	if err != nil {
		return st, fmt.Errorf("list bookings for %s: %w", st.Pending.DateISO, err)
	}
	if HasConflict(existing, start, end) {
		t.say("That slot is already booked. Could you try a different time?")
		return st, nil
	}

	st.Pending.StartTime = start
	st.Pending.EndTime = end
	st.Step = model.StepAskName
	t.say(fmt.Sprintf("Perfect — %s to %s.", start, end))
	return e.prompt(t, st), nil
}

func (e *Engine) handleAskName(t *transcript, text string, st model.AgentState) model.AgentState {
	name, ok := SanitizeName(text)
	if !ok {
		t.say("Please provide your full name.")
		return st
	}

	st.Pending.Name = name
	st.Step = model.StepAskEmail
	t.say("Thanks!")
	return e.prompt(t, st)
}

func (e *Engine) handleAskEmail(t *transcript, text string, st model.AgentState) model.AgentState {
	if !ValidEmail(text) {
		t.say("That email doesn't look right. Could you check it?")
		return st
	}

	st.Pending.Email = text
	st.Step = model.StepAskPhone
	t.say("Great!")
	return e.prompt(t, st)
}

func (e *Engine) handleAskPhone(t *transcript, text, lower string, st model.AgentState) model.AgentState {
	if lower == "skip" {
		st.Pending.Phone = ""
	} else {
		st.Pending.Phone = text
	}
	st.Step = model.StepConfirm
	return e.prompt(t, st)
}

func (e *Engine) handleConfirm(ctx context.Context, t *transcript, lower string, st model.AgentState) (model.AgentState, error) {
	switch lower {
	case "yes", "y":
		p := st.Pending
		rec := model.BookingRecord{
			ID:              e.newID(),
			ServiceID:       p.ServiceID,
			ServiceName:     p.ServiceName,
			DurationMinutes: p.DurationMinutes,
			DateISO:         p.DateISO,
			StartTime:       p.StartTime,
			EndTime:         p.EndTime,
			Name:            p.Name,
			Email:           p.Email,
			Phone:           p.Phone,
			Status:          model.BookingStatusConfirmed,
			CreatedAt:       e.now(),
		}
		if err := e.store.Append(ctx, rec); err != nil {
			return st, fmt.Errorf("append booking: %w", err)
		}

		e.logger.Info("Booking confirmed",
			zap.String("booking_id", rec.ID),
			zap.String("service", rec.ServiceID),
			zap.String("date", rec.DateISO),
			zap.String("time", formatting.FormatTimeRange(rec.StartTime, rec.EndTime)))

		t.say(fmt.Sprintf("You're all set, %s!\n%s on %s at %s.\nA confirmation will be sent to %s.",
			rec.Name, rec.ServiceName, rec.DateISO, rec.StartTime, rec.Email))
		t.say(fmt.Sprintf("Studio: %s. If you need changes, just say 'reschedule' or 'cancel'.",
			e.studio.Location))
		return model.AgentState{Step: model.StepCompleted}, nil

	case "no", "n":
		st.Step = model.StepAskTime
		t.say("No worries. What time would you prefer instead?")
		return st, nil

	default:
		t.say("Please reply with 'yes' to confirm or 'no' to adjust.")
		return st, nil
	}
}

// promptFor renders the question text for a step without emitting it.
func (e *Engine) promptFor(step model.Step, st model.AgentState) string {
	switch step {
	case model.StepAskService:
		return fmt.Sprintf("Which service would you like? Here are options:\n%s\nYou can reply with the service name.",
			ServicesSummary(e.studio.Services))
	case model.StepAskDate:
		return "Great! What date works for you? (e.g., 2025-11-05 or Nov 5)"
	case model.StepAskTime:
		return "What start time would you prefer? (e.g., 2pm or 14:30)"
	case model.StepAskName:
		return "Got it. What is your full name?"
	case model.StepAskEmail:
		return "And your email for the confirmation?"
	case model.StepAskPhone:
		return "Optional: a phone number to reach you? (or say skip)"
	case model.StepConfirm:
		return e.confirmSummary(st.Pending)
	default:
		return "How can I help with your makeup booking today?"
	}
}

// confirmSummary renders the recap the customer approves before persisting.
func (e *Engine) confirmSummary(p model.PendingBooking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please confirm:\n")
	fmt.Fprintf(&b, "Service: %s\n", p.ServiceName)
	fmt.Fprintf(&b, "Date: %s\n", p.DateISO)
	fmt.Fprintf(&b, "Time: %s\n", formatting.FormatTimeRange(p.StartTime, p.EndTime))
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Email: %s\n", p.Email)
	if p.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	}
	if svc := e.studio.ServiceByID(p.ServiceID); svc != nil {
		fmt.Fprintf(&b, "Rate: %s\n", formatting.FormatPrice(svc.PriceCents))
	}
	b.WriteString("Reply 'yes' to confirm or 'no' to change.")
	return b.String()
}

func (e *Engine) isBlackout(dateISO string) bool {
	for _, d := range e.studio.BlackoutDates {
		if d == dateISO {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
