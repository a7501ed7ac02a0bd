package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// intensityColor maps a share of the busiest day to a green shade.
func intensityColor(total, maxDuration time.Duration) lipgloss.Color {
	intensity := 0.0
	if maxDuration > 0 {
		intensity = float64(total) / float64(maxDuration)
	}

	switch {
	case intensity == 0:
		return lipgloss.Color("#333333")
	case intensity < 0.25:
		return lipgloss.Color("#005500")
	case intensity < 0.5:
		return lipgloss.Color("#00aa00")
	case intensity < 0.75:
		return lipgloss.Color("#00ff00")
	}
	return lipgloss.Color("#88ff88")
}

func maxOf(totals []time.Duration) time.Duration {
	var m time.Duration
	for _, t := range totals {
		if t > m {
			m = t
		}
	}
	return m
}

// RenderWeekHeatmap renders one square per day, Monday first.
func RenderWeekHeatmap(dailyTotals []time.Duration, width, height int, boxStyle lipgloss.Style) string {
	dayNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	maxDuration := maxOf(dailyTotals)

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Week Heatmap"))
	lines = append(lines, "")

	var columns []string
	for i, total := range dailyTotals {
		color := intensityColor(total, maxDuration)
		square := lipgloss.NewStyle().Foreground(color).Render("███")
		name := ""
		if i < len(dayNames) {
			name = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(dayNames[i])
		}
		columns = append(columns, lipgloss.NewStyle().Width(5).Render(lipgloss.JoinVertical(lipgloss.Left, square, name)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}

// RenderMonthHeatmap renders the days of a month as a calendar grid, Monday first.
// offset is the weekday column of the first day (0 = Monday).
func RenderMonthHeatmap(title string, dailyTotals []time.Duration, offset, width, height int, boxStyle lipgloss.Style) string {
	maxDuration := maxOf(dailyTotals)

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(title))
	lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("M T W T F S S"))

	var squares []string
	for i := 0; i < offset; i++ {
		squares = append(squares, "  ")
	}
	for _, total := range dailyTotals {
		squares = append(squares, lipgloss.NewStyle().Foreground(intensityColor(total, maxDuration)).Render("█")+" ")
		if len(squares) == 7 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, squares...))
			squares = nil
		}
	}
	if len(squares) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, squares...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}
