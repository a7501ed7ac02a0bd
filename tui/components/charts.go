package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ChartItem is one bar of the chart.
type ChartItem struct {
	Label    string
	Duration time.Duration
	Percent  float64
}

// RenderBarChart renders a horizontal bar chart scaled to the longest bar.
// Only the last rows that fit are shown, newest at the bottom.
func RenderBarChart(items []ChartItem, width, height int, chartBarStyle, chartLabelStyle, chartPercentStyle, boxStyle lipgloss.Style) string {
	if len(items) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("Nothing to chart."))
	}

	maxLines := height - 2
	if maxLines < 1 {
		maxLines = 1
	}
	if len(items) > maxLines {
		items = items[len(items)-maxLines:]
	}

	var maxDuration time.Duration
	for _, item := range items {
		if item.Duration > maxDuration {
			maxDuration = item.Duration
		}
	}

	barWidth := width - 30 // Leave space for label and percentage
	if barWidth < 5 {
		barWidth = 5
	}

	var lines []string
	for _, item := range items {
		if maxDuration > 0 {
			item.Percent = float64(item.Duration) / float64(maxDuration)
		}
		filled := int(float64(barWidth) * item.Percent)
		if filled < 0 {
			filled = 0
		}
		if filled > barWidth {
			filled = barWidth
		}

		label := item.Label
		if len(label) > 15 {
			label = label[:12] + "..."
		}

		line := lipgloss.JoinHorizontal(lipgloss.Left,
			lipgloss.NewStyle().Width(16).Render(chartLabelStyle.Render(label)),
			chartBarStyle.Render(strings.Repeat("█", filled)),
			" ",
			chartPercentStyle.Render(fmt.Sprintf("%d%%", int(item.Percent*100))),
		)
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}
