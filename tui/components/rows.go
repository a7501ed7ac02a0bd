package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RowItem is one line of a period or session listing.
type RowItem struct {
	Ordinal  string
	Label    string
	Duration time.Duration
}

// RenderRows renders a dotted listing of rows, ending with the total line.
// offset skips the first rows so long reports can be scrolled.
func RenderRows(items []RowItem, total RowItem, offset, width, height int, labelStyle, durationStyle, totalStyle, boxStyle lipgloss.Style, formatDurationShort func(time.Duration) string) string {
	if len(items) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("No time tracked in this view."))
	}

	maxLines := height - 3
	if maxLines < 1 {
		maxLines = 1
	}
	if offset > len(items)-1 {
		offset = len(items) - 1
	}
	if offset < 0 {
		offset = 0
	}

	var lines []string
	for _, item := range items[offset:] {
		if len(lines) >= maxLines {
			break
		}
		lines = append(lines, dottedLine(item, width, labelStyle, durationStyle, formatDurationShort))
	}
	lines = append(lines, dottedLine(total, width, totalStyle, totalStyle, formatDurationShort))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}

func dottedLine(item RowItem, width int, labelStyle, durationStyle lipgloss.Style, formatDurationShort func(time.Duration) string) string {
	left := item.Ordinal + "  " + labelStyle.Render(item.Label)
	right := durationStyle.Render(formatDurationShort(item.Duration))
	dots := strings.Repeat(".", max(0, width-lipgloss.Width(left)-lipgloss.Width(right)-6))
	return left + " " + dots + " " + right
}
