// Package tally reconstructs work intervals from a start/stop event log and
// sums them over arbitrary date ranges and calendar buckets.
package tally

import (
	"errors"
	"fmt"

	"worktime/storage"
)

// ErrMalformedLog is matched by every *MalformedLogError.
var ErrMalformedLog = errors.New("malformed log")

// MalformedLogError reports the first event that breaks the log invariants.
type MalformedLogError struct {
	Index  int
	Reason string
}

func (e *MalformedLogError) Error() string {
	return fmt.Sprintf("malformed log at event %d: %s", e.Index+1, e.Reason)
}

func (e *MalformedLogError) Is(target error) bool {
	return target == ErrMalformedLog
}

// Validate checks that log starts with a start, alternates kinds and never goes back in time.
func Validate(log []storage.Event) error {
	for i, e := range log {
		if !e.Kind.Valid() {
			return &MalformedLogError{Index: i, Reason: fmt.Sprintf("unknown kind %q", e.Kind)}
		}
		if i == 0 {
			if e.Kind != storage.Start {
				return &MalformedLogError{Index: i, Reason: "log starts with a stop"}
			}
			continue
		}
		prev := log[i-1]
		if e.Kind == prev.Kind {
			return &MalformedLogError{Index: i, Reason: fmt.Sprintf("two consecutive %s events", e.Kind)}
		}
		if e.Instant < prev.Instant {
			return &MalformedLogError{Index: i, Reason: "instant earlier than the previous event"}
		}
	}
	return nil
}
