package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeroState describes the running session, if any.
type HeroState struct {
	Running bool
	Since   time.Time     // start of the running session
	Elapsed time.Duration // running: session length; idle: time since the last stop today
	Today   time.Duration
}

// RenderHero renders the hero section with a large timer and today's total.
func RenderHero(state HeroState, width int, borderIdle, borderRunning, styleIdle, heroTimerStyle, heroTaskStyle lipgloss.Style, formatDurationFull, formatDurationShort func(time.Duration) string) string {
	var line string
	borderStyle := borderIdle

	if !state.Running {
		line = lipgloss.Place(width-4, 1, lipgloss.Center, lipgloss.Center, styleIdle.Render("IDLE "+formatDurationFull(state.Elapsed)))
	} else {
		borderStyle = borderRunning
		styledTimer := heroTimerStyle.Render(formatDurationFull(state.Elapsed))
		styledInfo := heroTaskStyle.Render("since " + state.Since.Format("15:04") + ", today " + formatDurationShort(state.Today))

		// Account for border padding (2 chars on each side = 4 total)
		availableWidth := width - 4
		spacing := 2
		if lipgloss.Width(styledTimer)+spacing+lipgloss.Width(styledInfo) <= availableWidth {
			line = styledTimer + strings.Repeat(" ", spacing) + styledInfo
		} else {
			line = styledTimer
		}
	}

	return borderStyle.Width(width).Render(line)
}
