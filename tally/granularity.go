package tally

import (
	"fmt"
	"strings"
	"time"

	"worktime/storage"
)

// Granularity is the calendar unit of a bucket.
type Granularity int

const (
	Day Granularity = iota
	Week
	Month
	Year
)

func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

// ParseGranularity accepts "day", "week", "month" and "year", singular or plural.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	}
	return Day, fmt.Errorf("unknown granularity: %s", s)
}

// Anchor returns the start of the first day of the bucket containing t, in t's location.
// Weeks start on Monday.
func (g Granularity) Anchor(t time.Time) time.Time {
	y, m, d := t.Date()
	switch g {
	case Week:
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		d -= weekday - 1
	case Month:
		d = 1
	case Year:
		m, d = time.January, 1
	}
	return storage.DayStart(y, m, d, t.Location())
}

// Next returns the anchor of the bucket after the one starting at anchor.
// It steps calendar dates, so a day that does not begin at midnight never
// shifts the anchors that follow.
func (g Granularity) Next(anchor time.Time) time.Time {
	y, m, d := anchor.Date()
	switch g {
	case Week:
		d += 7
	case Month:
		m++
	case Year:
		y++
	default:
		d++
	}
	return storage.DayStart(y, m, d, anchor.Location())
}

// LastDay returns the start of the last calendar date of the bucket starting at anchor.
func (g Granularity) LastDay(anchor time.Time) time.Time {
	y, m, d := g.Next(anchor).Date()
	return storage.DayStart(y, m, d-1, anchor.Location())
}

// dateAfter reports whether a's calendar date is later than b's.
func dateAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
