package tally

import (
	"time"

	"worktime/storage"
)

// SumID tags total rows.
const SumID = "SUM"

// Interval is one start/stop pair.
type Interval struct {
	Ordinal  int
	ID       string
	Start    int64
	Stop     int64
	Duration time.Duration
}

// Aggregate pairs events two by two and sums their durations.
// events must begin with a start. A trailing unmatched start is paired with now.
// The returned total carries SumID and the summed duration only.
func Aggregate(events []storage.Event, now time.Time) ([]Interval, Interval) {
	intervals := make([]Interval, 0, (len(events)+1)/2)
	var total time.Duration

	for i := 0; i < len(events); i += 2 {
		start := events[i].Instant
		stop := now.Unix()
		if i+1 < len(events) {
			stop = events[i+1].Instant
		}
		d := time.Duration(stop-start) * time.Second
		intervals = append(intervals, Interval{
			Ordinal:  len(intervals) + 1,
			Start:    start,
			Stop:     stop,
			Duration: d,
		})
		total += d
	}

	return intervals, Interval{ID: SumID, Duration: total}
}

// Range reconstructs the log over [firstDate, lastDate] and aggregates it.
func Range(log []storage.Event, firstDate, lastDate, now time.Time) ([]Interval, Interval, error) {
	events, err := Reconstruct(log, firstDate, lastDate, now)
	if err != nil {
		return nil, Interval{ID: SumID}, err
	}
	intervals, total := Aggregate(events, now)
	return intervals, total, nil
}

// Terms aggregates the whole log without windowing.
func Terms(log []storage.Event, now time.Time) ([]Interval, Interval, error) {
	if err := Validate(log); err != nil {
		return nil, Interval{ID: SumID}, err
	}
	intervals, total := Aggregate(log, now)
	return intervals, total, nil
}

// DailyTotals sums each of count consecutive calendar days starting at
// first's date. The log is validated once for all days.
func DailyTotals(log []storage.Event, first time.Time, count int, now time.Time) ([]time.Duration, error) {
	if err := Validate(log); err != nil {
		return nil, err
	}
	totals := make([]time.Duration, count)
	for i := range totals {
		day := dateIn(first, now.Location(), i)
		_, total := Aggregate(reconstruct(log, day, day, now), now)
		totals[i] = total.Duration
	}
	return totals, nil
}
