package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"worktime/tally"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	sumStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#00aa00"))
)

// FormatDuration formats a duration as "XhYYm".
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}

// FormatHours formats a duration as decimal hours with two places, e.g. "7.50".
func FormatHours(d time.Duration) string {
	seconds := decimal.NewFromInt(int64(d / time.Second))
	return seconds.Div(decimal.NewFromInt(3600)).StringFixed(2)
}

// PeriodLabel formats the anchor of a bucket row.
func PeriodLabel(g tally.Granularity, row tally.Row) string {
	switch g {
	case tally.Week:
		return row.Start.Format("2006-01-02") + " .. " + row.End.Format("2006-01-02")
	case tally.Month:
		return row.Start.Format("2006-01")
	case tally.Year:
		return row.Start.Format("2006")
	}
	return row.Start.Format("2006-01-02 Mon")
}

// newTable builds a bordered table whose last row (the SUM row) is highlighted.
func newTable(rows int, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case rows:
				return sumStyle
			}
			return cellStyle
		})
}

// RenderReport renders bucket rows followed by the SUM row.
func RenderReport(report tally.Report) string {
	t := newTable(len(report.Rows), "#", "PERIOD", "DURATION", "HOURS")
	for _, row := range report.Rows {
		t.Row(strconv.Itoa(row.Ordinal), PeriodLabel(report.Granularity, row), FormatDuration(row.Duration), FormatHours(row.Duration))
	}
	t.Row(report.Total.ID, "", FormatDuration(report.Total.Duration), FormatHours(report.Total.Duration))
	return t.String()
}

// RenderIntervals renders single sessions followed by the SUM row.
func RenderIntervals(intervals []tally.Interval, total tally.Interval, loc *time.Location) string {
	t := newTable(len(intervals), "#", "START", "STOP", "DURATION", "HOURS")
	for _, iv := range intervals {
		t.Row(
			strconv.Itoa(iv.Ordinal),
			time.Unix(iv.Start, 0).In(loc).Format("2006-01-02 15:04:05"),
			time.Unix(iv.Stop, 0).In(loc).Format("2006-01-02 15:04:05"),
			FormatDuration(iv.Duration),
			FormatHours(iv.Duration),
		)
	}
	t.Row(total.ID, "", "", FormatDuration(total.Duration), FormatHours(total.Duration))
	return t.String()
}
