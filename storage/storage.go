package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	ErrNoStart    = errors.New("log has to start with a start event")
	ErrSameKind   = errors.New("log cannot contain two consecutive events of the same kind")
	ErrOutOfOrder = errors.New("event cannot be earlier than the last logged event")
	ErrEmptyLog   = errors.New("log doesn't have any events")
	ErrNoFile     = errors.New("log file doesn't exist")
)

// Store persists the event log as a JSON array in Folder/File.
type Store struct {
	folder string
	file   string
	logger *zap.Logger
}

// Status summarizes the log file.
type Status struct {
	Path   string
	Exists bool
	Count  int
	First  *Event
	Last   *Event
	Open   bool
}

// New returns a store for the given folder and file name.
func New(folder, file string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{folder: folder, file: file, logger: logger}
}

// Path returns the full path of the log file.
func (s *Store) Path() string {
	return filepath.Join(s.folder, s.file)
}

// Load reads the full event log. A missing file yields an empty log.
func (s *Store) Load() ([]Event, error) {
	f, err := os.Open(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("log file missing, using empty log", zap.String("path", s.Path()))
			return []Event{}, nil
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	// Hand-edited files sometimes carry a byte-order mark.
	content, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	events, err := Decode(content)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded log", zap.String("path", s.Path()), zap.Int("events", len(events)))
	return events, nil
}

// Save replaces the log file with events, renumbering their IDs from 1.
func (s *Store) Save(events []Event) error {
	if err := os.MkdirAll(s.folder, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	content, err := Encode(events)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(), content, 0644); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	s.logger.Debug("saved log", zap.String("path", s.Path()), zap.Int("events", len(events)))
	return nil
}

// Append adds a new event at instant, refusing to break the alternation of kinds.
func (s *Store) Append(kind Kind, instant int64) (Event, error) {
	events, err := s.Load()
	if err != nil {
		return Event{}, err
	}

	if len(events) == 0 {
		if kind == Stop {
			return Event{}, ErrNoStart
		}
	} else {
		last := events[len(events)-1]
		if last.Kind == kind {
			return Event{}, ErrSameKind
		}
		if instant < last.Instant {
			return Event{}, ErrOutOfOrder
		}
	}

	event := Event{ID: len(events) + 1, Kind: kind, Instant: instant}
	events = append(events, event)
	if err := s.Save(events); err != nil {
		return Event{}, err
	}
	s.logger.Info("appended event", zap.Int("id", event.ID), zap.String("kind", string(kind)), zap.Int64("instant", instant))
	return event, nil
}

// EraseLast removes the last event of the log and returns it.
func (s *Store) EraseLast() (Event, error) {
	events, err := s.Load()
	if err != nil {
		return Event{}, err
	}
	if len(events) == 0 {
		return Event{}, ErrEmptyLog
	}

	last := events[len(events)-1]
	if err := s.Save(events[:len(events)-1]); err != nil {
		return Event{}, err
	}
	s.logger.Info("erased event", zap.Int("id", last.ID))
	return last, nil
}

// Delete removes the log file.
func (s *Store) Delete() error {
	if err := os.Remove(s.Path()); err != nil {
		if os.IsNotExist(err) {
			return ErrNoFile
		}
		return fmt.Errorf("failed to delete log file: %w", err)
	}
	s.logger.Info("deleted log file", zap.String("path", s.Path()))
	return nil
}

// Status reports basic information about the log file.
func (s *Store) Status() (Status, error) {
	st := Status{Path: s.Path()}
	if _, err := os.Stat(st.Path); err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("failed to stat log file: %w", err)
	}
	st.Exists = true

	events, err := s.Load()
	if err != nil {
		return st, err
	}
	st.Count = len(events)
	if len(events) > 0 {
		first, last := events[0], events[len(events)-1]
		st.First = &first
		st.Last = &last
		st.Open = IsOpen(events)
	}
	return st, nil
}

// Encode formats events as the on-disk JSON array.
func Encode(events []Event) ([]byte, error) {
	numbered := make([]Event, len(events))
	for i, e := range events {
		e.ID = i + 1
		numbered[i] = e
	}
	content, err := json.MarshalIndent(numbered, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode log: %w", err)
	}
	return append(content, '\n'), nil
}

// Decode parses the on-disk JSON array.
func Decode(content []byte) ([]Event, error) {
	events := []Event{}
	if len(content) == 0 {
		return events, nil
	}
	if err := json.Unmarshal(content, &events); err != nil {
		return nil, fmt.Errorf("failed to decode log: %w", err)
	}
	for i, e := range events {
		if !e.Kind.Valid() {
			return nil, fmt.Errorf("event %d has unknown kind %q", i+1, e.Kind)
		}
	}
	return events, nil
}
