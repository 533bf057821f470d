package model

import "time"

type BookingStatus string

const (
	BookingStatusTentative BookingStatus = "tentative"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingRecord is a persisted reservation. Service fields are copied from the
// chosen catalog entry at confirmation time and never re-joined later.
// Records are append-only; cancellation flips Status, nothing is deleted.
type BookingRecord struct {
	ID              string        `json:"id"`
	ServiceID       string        `json:"service_id"`
	ServiceName     string        `json:"service_name"`
	DurationMinutes int           `json:"duration_minutes"`
	DateISO         string        `json:"date_iso"`    // YYYY-MM-DD
	StartTime       string        `json:"start_time"`  // HH:mm (24h)
	EndTime         string        `json:"end_time"`    // HH:mm (24h)
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}
