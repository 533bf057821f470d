package formatting

import (
	"fmt"
	"time"
)

// FormatTimeRange formats a wall-clock range like "11:00-12:30".
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// FormatDuration formats a duration in minutes for display.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %d min", hours, mins)
}

// FormatDateWithWeekday formats a date with its weekday name.
func FormatDateWithWeekday(t time.Time) string {
	return t.Format("2006-01-02 (Monday)")
}

// WeekdayShort returns the short English weekday name for 0=Sunday..6=Saturday.
func WeekdayShort(weekday int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}
