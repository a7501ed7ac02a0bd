package tally

import (
	"time"

	"worktime/storage"
)

// Reconstruct returns the events covering [firstDate 00:00, lastDate+1 00:00) in now's location.
// Only the calendar fields of firstDate and lastDate are used. Sessions crossing the window edges
// are cut with synthetic events (ID 0) so the result starts with a start and ends with a stop.
// An open session that is the last event of the whole log is closed at now, clamped to the window.
// The input slice is never modified.
func Reconstruct(log []storage.Event, firstDate, lastDate, now time.Time) ([]storage.Event, error) {
	if err := Validate(log); err != nil {
		return nil, err
	}
	return reconstruct(log, firstDate, lastDate, now), nil
}

// ReconstructDay is Reconstruct over a single calendar date.
func ReconstructDay(log []storage.Event, day, now time.Time) ([]storage.Event, error) {
	return Reconstruct(log, day, day, now)
}

func reconstruct(log []storage.Event, firstDate, lastDate, now time.Time) []storage.Event {
	loc := now.Location()
	windowStart := dateIn(firstDate, loc, 0).Unix()
	windowEnd := dateIn(lastDate, loc, 1).Unix()

	events := []storage.Event{}
	prior, last := -1, -1
	for i, e := range log {
		if e.Instant >= windowEnd {
			break
		}
		if e.Instant < windowStart {
			prior = i
			continue
		}
		events = append(events, e)
		last = i
	}

	if prior >= 0 && log[prior].Kind == storage.Start && (len(events) == 0 || events[0].Kind == storage.Stop) {
		events = append([]storage.Event{{Kind: storage.Start, Instant: windowStart}}, events...)
		if last < 0 {
			last = prior
		}
	}

	if n := len(events); n > 0 && events[n-1].Kind == storage.Start {
		stop := windowEnd
		if last == len(log)-1 {
			stop = min(max(now.Unix(), events[n-1].Instant), windowEnd)
		}
		events = append(events, storage.Event{Kind: storage.Stop, Instant: stop})
	}

	return events
}

// dateIn returns the start of the day offset days after t's calendar date, in loc.
func dateIn(t time.Time, loc *time.Location, offset int) time.Time {
	y, m, d := t.Date()
	return storage.DayStart(y, m, d+offset, loc)
}
