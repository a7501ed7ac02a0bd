package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"worktime/config"
	"worktime/storage"
)

// LaunchTUI initializes and launches the terminal UI using Bubbletea.
// The dashboard reloads whenever the log file changes on disk.
func LaunchTUI(cfg config.Config, store *storage.Store, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	m := NewModel(cfg, store, logger)
	w, err := newLogWatcher(store.Path(), logger)
	if err != nil {
		logger.Warn("file watching disabled", zap.Error(err))
	} else {
		m.watcher = w
		defer w.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
