package cli

import "github.com/gen2brain/beeep"

// Notifier announces start and stop events.
type Notifier interface {
	Notify(title, message string) error
}

type desktopNotifier struct{}

func (desktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) error { return nil }

// NewNotifier returns a desktop notifier when enabled, otherwise a silent one.
func NewNotifier(enabled bool) Notifier {
	if !enabled {
		return nopNotifier{}
	}
	beeep.AppName = "worktime"
	return desktopNotifier{}
}
