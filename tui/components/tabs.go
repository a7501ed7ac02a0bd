package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderTabs renders the view selector with the active tab highlighted.
func RenderTabs(labels []string, active, width int, tabActive, tabInactive lipgloss.Style) string {
	var tabs []string
	for i, label := range labels {
		text := string(rune('1'+i)) + " " + label
		if i == active {
			tabs = append(tabs, tabActive.Render(text))
		} else {
			tabs = append(tabs, tabInactive.Render(text))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().Width(width).Render(row)
}
