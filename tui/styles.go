package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent  = lipgloss.Color("#7D56F4")
	colorRunning = lipgloss.Color("#04B575")
	colorMuted   = lipgloss.Color("#888888")
	colorError   = lipgloss.Color("#FF5F87")

	BorderIdle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 1)

	BorderRunning = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRunning).
			Padding(1, 1)

	StyleIdle      = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	HeroTimerStyle = lipgloss.NewStyle().Foreground(colorRunning).Bold(true)
	HeroInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))

	TabActive   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(colorAccent).Padding(0, 2)
	TabInactive = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	RowLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))
	RowDurationStyle = lipgloss.NewStyle().Foreground(colorAccent)
	RowTotalStyle    = lipgloss.NewStyle().Bold(true)

	ChartBarStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	ChartLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))
	ChartPercentStyle = lipgloss.NewStyle().Foreground(colorMuted)

	FooterStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(colorRunning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

// GetProgressColor picks a bar style by how close current is to target.
func GetProgressColor(current, target time.Duration) lipgloss.Style {
	if target <= 0 {
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
	ratio := float64(current) / float64(target)
	switch {
	case ratio >= 1:
		return lipgloss.NewStyle().Foreground(colorRunning)
	case ratio >= 0.5:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	}
	return lipgloss.NewStyle().Foreground(colorError)
}

// FormatDurationFull formats d as "03:05:09".
func FormatDurationFull(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}
