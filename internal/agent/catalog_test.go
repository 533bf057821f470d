package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashakmakeup/booking_bot/internal/config"
)

func TestResolveService(t *testing.T) {
	services := config.DefaultStudio().Services

	tests := []struct {
		input  string
		wantID string
		ok     bool
	}{
		{"bridal", "bridal", true},                 // exact id
		{"Bridal Glam", "bridal", true},            // exact name, case-insensitive
		{"the bridal glam please", "bridal", true}, // input contains name
		{"natural", "natural", true},
		{"trial", "trial", true},
		{"party glam", "party", true},
		{"glam", "bridal", true}, // substring of two names; catalog order breaks the tie
		{"", "", false},
		{"haircut", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			svc, ok := ResolveService(services, tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.wantID, svc.ID)
			}
		})
	}
}

func TestResolveServiceIsDeterministic(t *testing.T) {
	services := config.DefaultStudio().Services

	first, ok := ResolveService(services, "bridal glam")
	require.True(t, ok)
	second, ok := ResolveService(services, "bridal glam")
	require.True(t, ok)
	assert.Equal(t, first.ID, second.ID)
}

func TestServicesSummary(t *testing.T) {
	summary := ServicesSummary(config.DefaultStudio().Services)

	assert.Contains(t, summary, "Bridal Glam — 120 min, $350")
	assert.Contains(t, summary, "Natural Beat — 60 min, $150")
}
