package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderProgressBar renders a progress bar for goal tracking.
func RenderProgressBar(current, target time.Duration, label string, width int, progressStyle lipgloss.Style, formatDuration func(time.Duration) string) string {
	if target <= 0 {
		return label + ": N/A"
	}

	percent := float64(current) / float64(target)
	if percent > 1.0 {
		percent = 1.0
	}

	barWidth := width - 30 // Leave space for text
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * percent)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Width(7).Render(label+":"),
		progressStyle.Render(bar),
		fmt.Sprintf(" %3d%% ", int(percent*100)),
		"("+formatDuration(current)+" / "+formatDuration(target)+")",
	)
}

// RenderGoalProgress renders progress bars for daily and weekly goals.
func RenderGoalProgress(todayTotal, weekTotal, targetToday, targetWeek time.Duration, width int, getProgressStyle func(time.Duration, time.Duration) lipgloss.Style, formatDuration func(time.Duration) string) string {
	todayBar := RenderProgressBar(todayTotal, targetToday, "Today", width, getProgressStyle(todayTotal, targetToday), formatDuration)
	weekBar := RenderProgressBar(weekTotal, targetWeek, "Week", width, getProgressStyle(weekTotal, targetWeek), formatDuration)

	return lipgloss.JoinVertical(lipgloss.Left, todayBar, weekBar)
}
