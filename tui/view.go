package tui

import (
	"github.com/charmbracelet/lipgloss"

	"worktime/cli"
	"worktime/tui/components"
)

// renderMainView renders the main application view.
func renderMainView(m Model) string {
	width := m.width
	height := m.height
	if width < 80 {
		width = 80
	}
	if height < 24 {
		height = 24
	}

	footerHeight := 2
	contentHeight := height - footerHeight

	// Hero section (full width at top)
	heroHeight := 5
	heroSection := components.RenderHero(m.data.hero, width,
		BorderIdle, BorderRunning, StyleIdle, HeroTimerStyle, HeroInfoStyle,
		FormatDurationFull, cli.FormatDuration)

	tabsSection := components.RenderTabs(viewLabels, int(m.viewMode), width, TabActive, TabInactive)

	mainHeight := contentHeight - heroHeight - 1
	if mainHeight < 5 {
		mainHeight = 5
	}

	leftWidth := int(float64(width) * 0.50)
	rightWidth := width - leftWidth - 1

	var contentRow string
	if m.err != nil {
		contentRow = lipgloss.Place(width, mainHeight, lipgloss.Center, lipgloss.Center, ErrorStyle.Render("Error: "+m.err.Error()))
	} else {
		contentRow = lipgloss.JoinHorizontal(lipgloss.Left,
			renderListing(m, leftWidth, mainHeight),
			" ",
			renderSidebar(m, rightWidth, mainHeight),
		)
	}

	// Message (if any)
	var messageLine string
	if m.message != "" {
		msgStyle := SuccessStyle
		if m.messageError {
			msgStyle = ErrorStyle
		}
		messageLine = lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Top, msgStyle.Render(m.message))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heroSection,
		tabsSection,
		contentRow,
		messageLine,
		renderFooter(m, width),
	)
}

// renderListing renders the rows of the current view, with a heatmap under
// the week and month listings.
func renderListing(m Model, width, height int) string {
	switch m.viewMode {
	case ViewDays, ViewWeeks, ViewMonths:
		listHeight := height / 2
		heatmapHeight := height - listHeight
		if listHeight < 3 {
			listHeight = 3
		}
		if heatmapHeight < 3 {
			heatmapHeight = 3
		}
		list := components.RenderRows(m.data.rows, m.data.total, m.offset, width, listHeight,
			RowLabelStyle, RowDurationStyle, RowTotalStyle, BoxStyle, cli.FormatDuration)
		var heatmap string
		if m.viewMode == ViewMonths {
			heatmap = components.RenderMonthHeatmap(m.data.monthTitle, m.data.monthDays, m.data.monthOffset, width, heatmapHeight, BoxStyle)
		} else {
			heatmap = components.RenderWeekHeatmap(m.data.weekDays, width, heatmapHeight, BoxStyle)
		}
		return lipgloss.JoinVertical(lipgloss.Left, list, heatmap)
	}
	return components.RenderRows(m.data.rows, m.data.total, m.offset, width, height,
		RowLabelStyle, RowDurationStyle, RowTotalStyle, BoxStyle, cli.FormatDuration)
}

// renderSidebar renders goal progress above the bar chart of the view.
func renderSidebar(m Model, width, height int) string {
	goalsHeight := 4
	chartHeight := height - goalsHeight - 2
	if chartHeight < 3 {
		chartHeight = 3
	}

	goals := components.RenderGoalProgress(m.data.today, m.data.week, m.targetToday, m.targetWeek, width, GetProgressColor, cli.FormatDuration)
	goalsBox := BoxStyle.Width(width).Height(goalsHeight).Render(goals)

	chart := components.RenderBarChart(m.data.chart, width, chartHeight, ChartBarStyle, ChartLabelStyle, ChartPercentStyle, BoxStyle)
	return lipgloss.JoinVertical(lipgloss.Left, goalsBox, chart)
}

// renderFooter renders the footer with help text.
func renderFooter(m Model, width int) string {
	empty := "off"
	if m.showEmpty {
		empty = "on"
	}
	helpLine := "[1-6] Views  [s] Start  [x] Stop  [j/k] Scroll  [e] Empty rows (" + empty + ")  [r] Reload  [q] Quit"
	return FooterStyle.Width(width).Render(helpLine)
}
