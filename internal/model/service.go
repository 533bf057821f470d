package model

// ServiceOption is a catalog entry the studio offers.
type ServiceOption struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"` // in cents
}

// WorkingHours describes when the studio accepts appointments.
// DaysOpen uses 0=Sunday..6=Saturday, matching time.Weekday.
type WorkingHours struct {
	Open     string `json:"open"`  // HH:mm
	Close    string `json:"close"` // HH:mm
	DaysOpen []int  `json:"days_open"`
}

// IsOpenDay reports whether the weekday is in the open set.
func (w WorkingHours) IsOpenDay(weekday int) bool {
	for _, d := range w.DaysOpen {
		if d == weekday {
			return true
		}
	}
	return false
}
