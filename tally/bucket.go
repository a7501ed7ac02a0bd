package tally

import (
	"time"

	"worktime/storage"
)

// Options tune bucket output.
type Options struct {
	// ShowEmpty emits rows for buckets without any tracked time.
	ShowEmpty bool
}

// Row is one bucket of a report. Start and End are the first and last
// calendar dates of the bucket. The total row has ID SumID and zero dates.
type Row struct {
	Ordinal  int
	ID       string
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Report holds the bucket rows and their total.
type Report struct {
	Granularity Granularity
	Rows        []Row
	Total       Row
}

func newReport(g Granularity) Report {
	return Report{Granularity: g, Rows: []Row{}, Total: Row{ID: SumID}}
}

func (r *Report) add(start, end time.Time, d time.Duration) {
	r.Rows = append(r.Rows, Row{
		Ordinal:  len(r.Rows) + 1,
		Start:    start,
		End:      end,
		Duration: d,
	})
	r.Total.Duration += d
}

// Bucket sums the log per calendar bucket from the bucket of the first event
// to the bucket of the last one. An open session extends the range to now.
func Bucket(log []storage.Event, g Granularity, now time.Time, opts Options) (Report, error) {
	report := newReport(g)
	if len(log) == 0 {
		return report, nil
	}
	if err := Validate(log); err != nil {
		return report, err
	}

	loc := now.Location()
	lastInstant := log[len(log)-1].Instant
	if storage.IsOpen(log) {
		lastInstant = max(lastInstant, now.Unix())
	}

	first := g.Anchor(time.Unix(log[0].Instant, 0).In(loc))
	last := g.Anchor(time.Unix(lastInstant, 0).In(loc))

	for anchor := first; !dateAfter(anchor, last); anchor = g.Next(anchor) {
		end := g.LastDay(anchor)
		_, total := Aggregate(reconstruct(log, anchor, end, now), now)
		if total.Duration <= 0 && !opts.ShowEmpty {
			continue
		}
		report.add(anchor, end, total.Duration)
	}

	return report, nil
}

func ByDay(log []storage.Event, now time.Time, opts Options) (Report, error) {
	return Bucket(log, Day, now, opts)
}

func ByWeek(log []storage.Event, now time.Time, opts Options) (Report, error) {
	return Bucket(log, Week, now, opts)
}

func ByMonth(log []storage.Event, now time.Time, opts Options) (Report, error) {
	return Bucket(log, Month, now, opts)
}

func ByYear(log []storage.Event, now time.Time, opts Options) (Report, error) {
	return Bucket(log, Year, now, opts)
}

// Today reports the single day bucket containing now.
func Today(log []storage.Event, now time.Time, opts Options) (Report, error) {
	report := newReport(Day)
	if len(log) == 0 {
		return report, nil
	}
	if err := Validate(log); err != nil {
		return report, err
	}

	day := Day.Anchor(now)
	_, total := Aggregate(reconstruct(log, day, day, now), now)
	if total.Duration > 0 || opts.ShowEmpty {
		report.add(day, day, total.Duration)
	}
	return report, nil
}
