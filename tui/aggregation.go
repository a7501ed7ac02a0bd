package tui

import (
	"strconv"
	"time"

	"worktime/cli"
	"worktime/storage"
	"worktime/tally"
	"worktime/tui/components"
)

// dashboard is everything the view renders, computed once per refresh.
type dashboard struct {
	hero  components.HeroState
	rows  []components.RowItem
	total components.RowItem
	chart []components.ChartItem

	today time.Duration
	week  time.Duration

	weekDays    []time.Duration
	monthDays   []time.Duration
	monthOffset int
	monthTitle  string
}

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	return tally.Week.Anchor(t)
}

// daysBetween counts calendar dates from a's date to b's date.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func heroState(events []storage.Event, today, now time.Time, todayTotal time.Duration) components.HeroState {
	state := components.HeroState{Today: todayTotal}
	if len(events) == 0 {
		return state
	}
	last := events[len(events)-1]
	lastTime := last.Time(now.Location())
	if storage.IsOpen(events) {
		state.Running = true
		state.Since = lastTime
		state.Elapsed = now.Sub(lastTime)
	} else if !lastTime.Before(today) {
		state.Elapsed = now.Sub(lastTime)
	}
	return state
}

func intervalRows(intervals []tally.Interval, total tally.Interval, layout string, loc *time.Location) ([]components.RowItem, components.RowItem) {
	rows := make([]components.RowItem, 0, len(intervals))
	for i := len(intervals) - 1; i >= 0; i-- {
		iv := intervals[i]
		rows = append(rows, components.RowItem{
			Ordinal:  strconv.Itoa(iv.Ordinal),
			Label:    time.Unix(iv.Start, 0).In(loc).Format(layout) + " - " + time.Unix(iv.Stop, 0).In(loc).Format("15:04"),
			Duration: iv.Duration,
		})
	}
	return rows, components.RowItem{Ordinal: total.ID, Label: "total", Duration: total.Duration}
}

func intervalChart(intervals []tally.Interval, loc *time.Location) []components.ChartItem {
	items := make([]components.ChartItem, 0, len(intervals))
	for _, iv := range intervals {
		items = append(items, components.ChartItem{
			Label:    time.Unix(iv.Start, 0).In(loc).Format("01-02 15:04"),
			Duration: iv.Duration,
		})
	}
	return items
}

func reportRows(report tally.Report) ([]components.RowItem, components.RowItem, []components.ChartItem) {
	rows := make([]components.RowItem, 0, len(report.Rows))
	chart := make([]components.ChartItem, 0, len(report.Rows))
	for i := len(report.Rows) - 1; i >= 0; i-- {
		row := report.Rows[i]
		rows = append(rows, components.RowItem{
			Ordinal:  strconv.Itoa(row.Ordinal),
			Label:    cli.PeriodLabel(report.Granularity, row),
			Duration: row.Duration,
		})
	}
	for _, row := range report.Rows {
		chart = append(chart, components.ChartItem{
			Label:    cli.PeriodLabel(report.Granularity, row),
			Duration: row.Duration,
		})
	}
	total := components.RowItem{Ordinal: report.Total.ID, Label: "total", Duration: report.Total.Duration}
	return rows, total, chart
}

// buildDashboard computes the hero, goals, heatmaps and the listing for mode.
// Rows are newest first; chart items stay in chronological order. The log is
// validated once for the daily totals and once for the listing.
func buildDashboard(events []storage.Event, mode ViewMode, now time.Time, opts tally.Options) (dashboard, error) {
	var d dashboard
	loc := now.Location()
	today := tally.Day.Anchor(now)

	monday := weekStart(now)
	monthFirst := tally.Month.Anchor(now)
	monthLen := tally.Month.LastDay(monthFirst).Day()

	// One pass over the days covering both the current week and month.
	first := monday
	if monthFirst.Before(first) {
		first = monthFirst
	}
	count := max(daysBetween(first, monday)+7, daysBetween(first, monthFirst)+monthLen)
	days, err := tally.DailyTotals(events, first, count, now)
	if err != nil {
		return d, err
	}

	weekOffset := daysBetween(first, monday)
	d.weekDays = days[weekOffset : weekOffset+7]
	for _, total := range d.weekDays {
		d.week += total
	}
	d.today = days[daysBetween(first, today)]

	monthOffset := daysBetween(first, monthFirst)
	d.monthDays = days[monthOffset : monthOffset+monthLen]
	weekday := int(monthFirst.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	d.monthOffset = weekday - 1 // Monday = 0
	d.monthTitle = monthFirst.Format("January 2006")

	d.hero = heroState(events, today, now, d.today)

	switch mode {
	case ViewToday:
		intervals, total, err := tally.Range(events, today, today, now)
		if err != nil {
			return d, err
		}
		d.rows, d.total = intervalRows(intervals, total, "15:04", loc)
		d.chart = intervalChart(intervals, loc)
	case ViewTerms:
		intervals, total, err := tally.Terms(events, now)
		if err != nil {
			return d, err
		}
		d.rows, d.total = intervalRows(intervals, total, "2006-01-02 15:04", loc)
		d.chart = intervalChart(intervals, loc)
	default:
		report, err := tally.Bucket(events, mode.Granularity(), now, opts)
		if err != nil {
			return d, err
		}
		d.rows, d.total, d.chart = reportRows(report)
	}
	return d, nil
}
