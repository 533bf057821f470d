package agent

import (
	"fmt"
	"strings"

	"github.com/sashakmakeup/booking_bot/internal/formatting"
	"github.com/sashakmakeup/booking_bot/internal/model"
)

// ResolveService matches free text against the catalog: exact id, exact
// case-insensitive name, then substring containment in either direction.
// Catalog order is the tie-break, so the same input always resolves to the
// same entry.
func ResolveService(services []model.ServiceOption, input string) (model.ServiceOption, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return model.ServiceOption{}, false
	}

	for _, svc := range services {
		name := strings.ToLower(svc.Name)
		if svc.ID == s || name == s {
			return svc, true
		}
		if strings.Contains(s, svc.ID) || strings.Contains(s, name) {
			return svc, true
		}
		if strings.Contains(svc.ID, s) || strings.Contains(name, s) {
			return svc, true
		}
	}
	return model.ServiceOption{}, false
}

// ServicesSummary renders the catalog as one line per service.
func ServicesSummary(services []model.ServiceOption) string {
	lines := make([]string, 0, len(services))
	for _, svc := range services {
		lines = append(lines, fmt.Sprintf("%s — %d min, %s",
			svc.Name, svc.DurationMinutes, formatting.FormatPriceShort(svc.PriceCents)))
	}
	return strings.Join(lines, "\n")
}
