package agent

// Input normalizers. All functions here are pure and total: anything
// unparseable comes back as an explicit (value, ok) pair so the engine can
// answer conversationally instead of failing.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sashakmakeup/booking_bot/internal/model"
)

const minutesPerDay = 24 * 60

var (
	timeRe     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	numDateRe  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}))?$`)
	wordDateRe = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:,?\s*(\d{4}))?$`)
	nameJunkRe = regexp.MustCompile(`[^a-zA-Z\s\-'.]`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ParseTime converts "2pm", "14:30", "9" and similar to 24-hour "HH:mm".
// 12am maps to 00:00 and 12pm to 12:00.
func ParseTime(input string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// ParseDate normalizes free-text dates to "YYYY-MM-DD". Relative words resolve
// against now; numeric forms default the year to now's year; month names match
// by case-insensitive prefix and must be unambiguous.
func ParseDate(input string, now time.Time) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))

	switch s {
	case "today":
		return now.Format("2006-01-02"), true
	case "tomorrow", "tmrw":
		return now.AddDate(0, 0, 1).Format("2006-01-02"), true
	}

	if isoDateRe.MatchString(s) {
		return s, true
	}

	if m := numDateRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}

	if m := wordDateRe.FindStringSubmatch(s); m != nil {
		month, ok := monthByPrefix(m[1])
		if !ok {
			return "", false
		}
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if day < 1 || day > 31 {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
	}

	return "", false
}

// monthByPrefix resolves a month-name prefix. Ambiguous prefixes such as "ju"
// or "ma" do not resolve.
func monthByPrefix(token string) (time.Month, bool) {
	var found time.Month
	matches := 0
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), token) {
			found = m
			matches++
		}
	}
	if matches != 1 {
		return 0, false
	}
	return found, true
}

// AddMinutes adds a whole-minute duration to "HH:mm", wrapping modulo 24h.
func AddMinutes(hhmm string, minutes int) string {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])

	total := (h*60 + m + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// WithinWorkingHours reports whether [start,end] fits the studio's hours on
// the given date. Lexicographic comparison is safe for zero-padded "HH:mm".
func WithinWorkingHours(hours model.WorkingHours, dateISO, start, end string) bool {
	d, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return false
	}
	if !hours.IsOpenDay(int(d.Weekday())) {
		return false
	}
	return start >= hours.Open && end <= hours.Close
}

// HasConflict reports whether the proposed [start,end) interval overlaps any
// non-cancelled booking in the list. Touching intervals do not conflict.
func HasConflict(existing []model.BookingRecord, start, end string) bool {
	for _, b := range existing {
		if b.Status == model.BookingStatusCancelled {
			continue
		}
		if !(end <= b.StartTime || start >= b.EndTime) {
			return true
		}
	}
	return false
}

// SanitizeName strips everything outside letters, spaces, hyphens,
// apostrophes and periods. A name shorter than two characters is rejected.
func SanitizeName(input string) (string, bool) {
	name := strings.TrimSpace(nameJunkRe.ReplaceAllString(input, ""))
	if len(name) < 2 {
		return "", false
	}
	return name, true
}

// ValidEmail checks the simple local@domain.tld shape.
func ValidEmail(input string) bool {
	return emailRe.MatchString(input)
}
