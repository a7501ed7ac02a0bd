package storage

import (
	"fmt"
	"time"
)

// Kind is the type of a logged event.
type Kind string

const (
	Start Kind = "start"
	Stop  Kind = "stop"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Start || k == Stop
}

// Event represents one logged instant.
// ID is the 1-based sequence number assigned on save; synthetic events carry 0.
type Event struct {
	ID      int   `json:"id,omitempty"`
	Kind    Kind  `json:"kind"`
	Instant int64 `json:"instant"`
}

// Time returns the event instant in the given location.
func (e Event) Time(loc *time.Location) time.Time {
	return time.Unix(e.Instant, 0).In(loc)
}

// Format renders the event for status output, with its instant in loc.
func (e Event) Format(loc *time.Location) string {
	stamp := e.Time(loc).Format("2006-01-02 15:04:05")
	if e.ID == 0 {
		return fmt.Sprintf("%s @ %s", e.Kind, stamp)
	}
	return fmt.Sprintf("#%d %s @ %s", e.ID, e.Kind, stamp)
}

// IsOpen reports whether the log ends with an unmatched start.
func IsOpen(events []Event) bool {
	return len(events) > 0 && events[len(events)-1].Kind == Start
}
