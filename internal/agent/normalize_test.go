package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashakmakeup/booking_bot/internal/model"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2pm", "14:00", true},
		{"2 pm", "14:00", true},
		{"12am", "00:00", true},
		{"12pm", "12:00", true},
		{"14:30", "14:30", true},
		{"9", "09:00", true},
		{"  11AM ", "11:00", true},
		{"0:05", "00:05", true},
		{"23:59", "23:59", true},
		{"25:00", "", false},
		{"2:75pm", "", false},
		{"noonish", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2025-11-05", "2025-11-05", true},
		{"today", "2025-11-01", true},
		{"tomorrow", "2025-11-02", true},
		{"tmrw", "2025-11-02", true},
		{"11/5", "2025-11-05", true},
		{"11/5/2026", "2026-11-05", true},
		{"11-5", "2025-11-05", true},
		{"Nov 5", "2025-11-05", true},
		{"november 5", "2025-11-05", true},
		{"Nov 5, 2026", "2026-11-05", true},
		{"dec 24 2025", "2025-12-24", true},
		{"13/40", "", false},
		{"0/5", "", false},
		{"ju 5", "", false},  // ambiguous prefix: june or july
		{"ma 5", "", false},  // ambiguous prefix: march or may
		{"jul 5", "2025-07-05", true},
		{"zzz 5", "", false},
		{"next friday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input, now)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "18:30", AddMinutes("17:30", 60))
	assert.Equal(t, "12:15", AddMinutes("11:00", 75))
	assert.Equal(t, "01:00", AddMinutes("23:00", 120)) // wraps past midnight
	assert.Equal(t, "00:00", AddMinutes("00:00", 1440))
}

func TestWithinWorkingHours(t *testing.T) {
	hours := model.WorkingHours{
		Open:     "10:00",
		Close:    "18:00",
		DaysOpen: []int{2, 3, 4, 5, 6, 0}, // closed Mondays
	}

	// 2025-12-01 is a Monday, 2025-12-02 a Tuesday.
	assert.False(t, WithinWorkingHours(hours, "2025-12-01", "11:00", "12:00"))
	assert.False(t, WithinWorkingHours(hours, "2025-12-02", "09:30", "10:30"))
	assert.False(t, WithinWorkingHours(hours, "2025-12-02", "17:30", "18:30"))
	assert.True(t, WithinWorkingHours(hours, "2025-12-02", "17:00", "18:00"))
	assert.True(t, WithinWorkingHours(hours, "2025-12-02", "10:00", "11:00"))
	assert.False(t, WithinWorkingHours(hours, "not-a-date", "11:00", "12:00"))

	// A slot wrapping past midnight can never fit the working hours.
	assert.False(t, WithinWorkingHours(hours, "2025-12-02", "23:00", AddMinutes("23:00", 120)))
}

func TestHasConflict(t *testing.T) {
	existing := []model.BookingRecord{
		{DateISO: "2025-12-02", StartTime: "14:00", EndTime: "15:00", Status: model.BookingStatusConfirmed},
	}

	assert.True(t, HasConflict(existing, "14:30", "15:30"))
	assert.True(t, HasConflict(existing, "13:30", "14:30"))
	assert.True(t, HasConflict(existing, "14:00", "15:00"))
	assert.False(t, HasConflict(existing, "15:00", "16:00")) // touching intervals do not conflict
	assert.False(t, HasConflict(existing, "13:00", "14:00"))

	cancelled := []model.BookingRecord{
		{DateISO: "2025-12-02", StartTime: "14:00", EndTime: "15:00", Status: model.BookingStatusCancelled},
	}
	assert.False(t, HasConflict(cancelled, "14:30", "15:30"))
}

func TestSanitizeName(t *testing.T) {
	name, ok := SanitizeName("Jane Doe")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	name, ok = SanitizeName("  Mary-Jane O'Neil Jr. ")
	require.True(t, ok)
	assert.Equal(t, "Mary-Jane O'Neil Jr.", name)

	name, ok = SanitizeName("Jane123 Doe!!")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	_, ok = SanitizeName("9")
	assert.False(t, ok)

	_, ok = SanitizeName("  !  ")
	assert.False(t, ok)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.True(t, ValidEmail("j.doe+tag@mail.example.org"))
	assert.False(t, ValidEmail("jane@example"))
	assert.False(t, ValidEmail("jane example@x.com"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("jane@@example.com"))
	assert.False(t, ValidEmail(""))
}
