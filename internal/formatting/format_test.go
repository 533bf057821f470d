package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$350.00", FormatPrice(35000))
	assert.Equal(t, "$150.50", FormatPrice(15050))
	assert.Equal(t, "$0.00", FormatPrice(0))
}

func TestFormatPriceShort(t *testing.T) {
	assert.Equal(t, "$350", FormatPriceShort(35000))
	assert.Equal(t, "$150.50", FormatPriceShort(15050))
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "11:00-12:30", FormatTimeRange("11:00", "12:30"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45))
	assert.Equal(t, "1 h", FormatDuration(60))
	assert.Equal(t, "1 h 30 min", FormatDuration(90))
}

func TestWeekdayShort(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayShort(0))
	assert.Equal(t, "Sat", WeekdayShort(6))
	assert.Equal(t, "?", WeekdayShort(9))
}
