package schedule

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashakmakeup/booking_bot/internal/model"
)

func TestRenderWeekProducesPNG(t *testing.T) {
	hours := model.WorkingHours{Open: "10:00", Close: "18:00", DaysOpen: []int{2, 3, 4, 5, 6, 0}}
	weekStart := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC) // a Sunday

	bookings := []model.BookingRecord{
		{DateISO: "2025-12-02", StartTime: "11:00", EndTime: "13:00", ServiceName: "Bridal Glam", Status: model.BookingStatusConfirmed},
		{DateISO: "2025-12-03", StartTime: "14:00", EndTime: "15:00", ServiceName: "Natural Beat", Status: model.BookingStatusCancelled},
		{DateISO: "2026-01-15", StartTime: "11:00", EndTime: "12:00", ServiceName: "Out of range", Status: model.BookingStatusConfirmed},
	}

	data, err := RenderWeek(bookings, weekStart, hours)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestRenderWeekHandlesEmptyWeek(t *testing.T) {
	hours := model.WorkingHours{Open: "10:00", Close: "18:00", DaysOpen: []int{1, 2, 3, 4, 5}}

	data, err := RenderWeek(nil, time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), hours)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
