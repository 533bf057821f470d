package config

import (
	"fmt"

	"github.com/sashakmakeup/booking_bot/internal/model"
)

// Studio is the immutable business configuration the assistant books against.
// It is defined in code, validated once at startup and treated as read-only.
type Studio struct {
	BusinessName  string
	OwnerName     string
	Location      string
	ContactEmail  string
	Phone         string
	Timezone      string // informational only, dates are naive local calendar dates
	Services      []model.ServiceOption
	WorkingHours  model.WorkingHours
	SlotMinutes   int
	BlackoutDates []string // YYYY-MM-DD
}

// DefaultStudio returns the configuration for Sasha K Makeup.
func DefaultStudio() *Studio {
	return &Studio{
		BusinessName: "Sasha K Makeup",
		OwnerName:    "Sasha K",
		Location:     "Studio near Downtown, 125 Bloom St, Suite 3B",
		ContactEmail: "bookings@sashakmakeup.com",
		Timezone:     "America/Los_Angeles",
		Services: []model.ServiceOption{
			{
				ID:              "bridal",
				Name:            "Bridal Glam",
				Description:     "Full bridal makeup including lashes and touch-up kit.",
				DurationMinutes: 120,
				PriceCents:      35000,
			},
			{
				ID:              "party",
				Name:            "Party Glam",
				Description:     "Event-ready glam suitable for parties or nights out.",
				DurationMinutes: 90,
				PriceCents:      22000,
			},
			{
				ID:              "natural",
				Name:            "Natural Beat",
				Description:     "Soft, natural makeup for daytime or headshots.",
				DurationMinutes: 60,
				PriceCents:      15000,
			},
			{
				ID:              "trial",
				Name:            "Bridal Trial",
				Description:     "Trial session to find your perfect bridal look.",
				DurationMinutes: 75,
				PriceCents:      18000,
			},
		},
		WorkingHours: model.WorkingHours{
			// Open Tue-Sun 10:00-18:00 (closed Mondays)
			Open:     "10:00",
			Close:    "18:00",
			DaysOpen: []int{2, 3, 4, 5, 6, 0},
		},
		SlotMinutes:   30,
		BlackoutDates: []string{},
	}
}

// Validate checks the invariants the dialogue engine relies on.
func (s *Studio) Validate() error {
	if len(s.Services) == 0 {
		return fmt.Errorf("studio must offer at least one service")
	}

	seen := make(map[string]struct{}, len(s.Services))
	for _, svc := range s.Services {
		if svc.ID == "" {
			return fmt.Errorf("service %q has an empty id", svc.Name)
		}
		if _, ok := seen[svc.ID]; ok {
			return fmt.Errorf("duplicate service id %q", svc.ID)
		}
		seen[svc.ID] = struct{}{}
		if svc.DurationMinutes <= 0 {
			return fmt.Errorf("service %q has a non-positive duration", svc.ID)
		}
	}

	if s.WorkingHours.Open >= s.WorkingHours.Close {
		return fmt.Errorf("working hours open %q must be before close %q",
			s.WorkingHours.Open, s.WorkingHours.Close)
	}
	if len(s.WorkingHours.DaysOpen) == 0 {
		return fmt.Errorf("studio must be open at least one weekday")
	}
	for _, d := range s.WorkingHours.DaysOpen {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid weekday %d in days open", d)
		}
	}

	return nil
}

// ServiceByID looks up a catalog entry, returning nil when absent.
func (s *Studio) ServiceByID(id string) *model.ServiceOption {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}
