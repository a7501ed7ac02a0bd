package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"worktime/cli"
	"worktime/config"
	"worktime/storage"
	"worktime/tally"
)

// ViewMode selects the listing shown in the main area.
type ViewMode int

const (
	ViewToday ViewMode = iota
	ViewDays
	ViewWeeks
	ViewMonths
	ViewYears
	ViewTerms
)

var viewLabels = []string{"Today", "Days", "Weeks", "Months", "Years", "Terms"}

// Granularity maps bucket views to their granularity. Today and Terms map to Day.
func (v ViewMode) Granularity() tally.Granularity {
	switch v {
	case ViewWeeks:
		return tally.Week
	case ViewMonths:
		return tally.Month
	case ViewYears:
		return tally.Year
	}
	return tally.Day
}

type tickMsg time.Time

type reloadMsg struct {
	events []storage.Event
	err    error
}

// Model is the dashboard state.
type Model struct {
	store    *storage.Store
	logger   *zap.Logger
	notifier cli.Notifier
	watcher  *logWatcher
	clock    func() time.Time

	events []storage.Event
	now    time.Time
	data   dashboard
	err    error

	width, height int
	viewMode      ViewMode
	offset        int
	showEmpty     bool

	targetToday time.Duration
	targetWeek  time.Duration

	message      string
	messageError bool
}

// NewModel returns a model reading from store. Events are loaded by Init.
func NewModel(cfg config.Config, store *storage.Store, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		store:       store,
		logger:      logger,
		notifier:    cli.NewNotifier(cfg.Notify),
		clock:       storage.Now,
		showEmpty:   cfg.ShowEmpty,
		targetToday: cfg.TargetToday,
		targetWeek:  cfg.TargetWeek,
	}
	m.now = m.clock()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadEvents(m.store), tick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher.sub))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadEvents(store *storage.Store) tea.Cmd {
	return func() tea.Msg {
		events, err := store.Load()
		return reloadMsg{events: events, err: err}
	}
}

// refresh recomputes the dashboard for the current events, view and time.
func (m *Model) refresh() {
	m.data, m.err = buildDashboard(m.events, m.viewMode, m.now, tally.Options{ShowEmpty: m.showEmpty})
	if m.err != nil {
		m.logger.Debug("dashboard refresh failed", zap.Error(m.err))
	}
}

func (m *Model) setMessage(msg string, isError bool) {
	m.message = msg
	m.messageError = isError
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		prev := m.now
		m.now = m.clock()
		// Without a running session only the idle timer moves until the date changes.
		if storage.IsOpen(m.events) || daysBetween(prev, m.now) != 0 {
			m.refresh()
		} else {
			m.data.hero = heroState(m.events, tally.Day.Anchor(m.now), m.now, m.data.today)
		}
		return m, tick()

	case reloadMsg:
		if msg.err != nil {
			m.setMessage("Error: "+msg.err.Error(), true)
			return m, nil
		}
		m.events = msg.events
		m.refresh()
		return m, nil

	case fileChangedMsg:
		var wait tea.Cmd
		if m.watcher != nil {
			wait = waitForChange(m.watcher.sub)
		}
		return m, tea.Batch(loadEvents(m.store), wait)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		m.viewMode = ViewMode(key[0] - '1')
		m.offset = 0
	case "tab":
		m.viewMode = (m.viewMode + 1) % ViewMode(len(viewLabels))
		m.offset = 0
	case "shift+tab":
		m.viewMode = (m.viewMode + ViewMode(len(viewLabels)) - 1) % ViewMode(len(viewLabels))
		m.offset = 0
	case "j", "down":
		if m.offset < len(m.data.rows)-1 {
			m.offset++
		}
		return m, nil
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
		return m, nil
	case "e":
		m.showEmpty = !m.showEmpty
	case "r":
		m.setMessage("Reloaded "+m.store.Path(), false)
		return m, loadEvents(m.store)
	case "s":
		return m.mark(storage.Start)
	case "x":
		return m.mark(storage.Stop)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// mark appends a start or stop event at the current time.
func (m Model) mark(kind storage.Kind) (tea.Model, tea.Cmd) {
	m.now = m.clock()
	event, err := m.store.Append(kind, m.now.Unix())
	if err != nil {
		m.setMessage("Error: "+err.Error(), true)
		return m, nil
	}
	m.setMessage("New timestamp: "+event.Format(m.now.Location()), false)

	title := "Timer started"
	if kind == storage.Stop {
		title = "Timer stopped"
	}
	if err := m.notifier.Notify(title, m.now.Format("15:04")); err != nil {
		m.logger.Warn("notification failed", zap.Error(err))
	}
	return m, loadEvents(m.store)
}

func (m Model) View() string {
	return renderMainView(m)
}
