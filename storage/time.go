package storage

import (
	"fmt"
	"regexp"
	"time"
)

var timeOfDayRe = regexp.MustCompile(`^(?P<hour>\d{1,2}):(?P<minute>\d{2})$`)

// Now returns current local time with seconds precision (no microseconds).
func Now() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location())
}

// DayStart returns the first instant whose calendar date in loc is y-m-d.
// Out-of-range values are normalized as by time.Date. Where a zone change
// skips local midnight the day starts at the transition.
func DayStart(y int, m time.Month, d int, loc *time.Location) time.Time {
	y, m, d = time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)

	ty, tm, td := t.Date()
	if ty == y && tm == m && td == d {
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t
		}
		// Normalized forward past the gap.
		if start, _ := t.ZoneBounds(); !start.IsZero() {
			return start
		}
		return t
	}
	// Normalized back into the previous day.
	if _, end := t.ZoneBounds(); !end.IsZero() {
		return end
	}
	return t
}

// StartOfDay returns the first instant of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	return DayStart(t.Year(), t.Month(), t.Day(), t.Location())
}

// ParseDate parses a date string in YYYY-MM-DD format and returns the start
// of that day in the given location.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return DayStart(t.Year(), t.Month(), t.Day(), loc), nil
}

// ParseTimeOfDay parses a time string in HH:MM format.
// Returns hour and minute, or an error if invalid.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	matches := timeOfDayRe.FindStringSubmatch(value)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", value)
	}

	var h, m int
	fmt.Sscanf(matches[1], "%d", &h)
	fmt.Sscanf(matches[2], "%d", &m)

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid time value: %s", value)
	}

	return h, m, nil
}

// ParseWhen parses a time string that can be either:
// - An ISO 8601 datetime string (with optional timezone)
// - An HH:MM time for the fallback's day
// If value is empty, returns fallback.
func ParseWhen(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, fallback.Location()); err == nil {
		return t, nil
	}

	hour, minute, err := ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time: %s", value)
	}

	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), hour, minute, 0, 0, fallback.Location()), nil
}
