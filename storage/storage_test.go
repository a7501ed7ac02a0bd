package storage

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "timestamps"), "timestamps.json", nil)
}

func TestEncodeAndDecodeRoundTrip(t *testing.T) {
	events := []Event{
		{Kind: Start, Instant: 1700000000},
		{Kind: Stop, Instant: 1700003600},
	}

	raw, err := Encode(events)
	if err != nil {
		t.Fatalf("Failed to encode log: %v", err)
	}
	parsed, err := Decode(raw)
	if err != nil {
		t.Fatalf("Failed to decode log: %v", err)
	}

	want := []Event{
		{ID: 1, Kind: Start, Instant: 1700000000},
		{ID: 2, Kind: Stop, Instant: 1700003600},
	}
	if diff := cmp.Diff(want, parsed); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`[{"id": 1, "kind": "pause", "instant": 10}]`))
	if err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	events, err := store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Expected empty log, got %d events", len(events))
	}
}

func TestLoadWithByteOrderMark(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`[{"id": 1, "kind": "start", "instant": 100}]`)...)
	if err := os.WriteFile(store.Path(), content, 0644); err != nil {
		t.Fatal(err)
	}

	events, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load log with BOM: %v", err)
	}
	if len(events) != 1 || events[0].Kind != Start || events[0].Instant != 100 {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestAppendAlternation(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Append(Stop, 100); !errors.Is(err, ErrNoStart) {
		t.Errorf("Expected ErrNoStart, got %v", err)
	}

	ev, err := store.Append(Start, 100)
	if err != nil {
		t.Fatalf("Failed to append start: %v", err)
	}
	if ev.ID != 1 {
		t.Errorf("Expected ID 1, got %d", ev.ID)
	}

	if _, err := store.Append(Start, 200); !errors.Is(err, ErrSameKind) {
		t.Errorf("Expected ErrSameKind, got %v", err)
	}
	if _, err := store.Append(Stop, 50); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("Expected ErrOutOfOrder, got %v", err)
	}

	ev, err = store.Append(Stop, 200)
	if err != nil {
		t.Fatalf("Failed to append stop: %v", err)
	}
	if ev.ID != 2 {
		t.Errorf("Expected ID 2, got %d", ev.ID)
	}

	events, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []Event{{ID: 1, Kind: Start, Instant: 100}, {ID: 2, Kind: Stop, Instant: 200}}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("Stored log mismatch (-want +got):\n%s", diff)
	}
}

func TestEraseLast(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.EraseLast(); !errors.Is(err, ErrEmptyLog) {
		t.Errorf("Expected ErrEmptyLog, got %v", err)
	}

	if err := store.Save([]Event{{Kind: Start, Instant: 1}, {Kind: Stop, Instant: 2}}); err != nil {
		t.Fatal(err)
	}
	erased, err := store.EraseLast()
	if err != nil {
		t.Fatalf("Failed to erase: %v", err)
	}
	if erased.Kind != Stop || erased.ID != 2 {
		t.Errorf("Expected erased stop #2, got %+v", erased)
	}

	events, _ := store.Load()
	if len(events) != 1 {
		t.Errorf("Expected 1 event left, got %d", len(events))
	}
}

func TestDeleteAndStatus(t *testing.T) {
	store := newTestStore(t)

	st, err := store.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Exists {
		t.Error("Expected missing file")
	}
	if err := store.Delete(); !errors.Is(err, ErrNoFile) {
		t.Errorf("Expected ErrNoFile, got %v", err)
	}

	if err := store.Save([]Event{{Kind: Start, Instant: 1}, {Kind: Stop, Instant: 2}, {Kind: Start, Instant: 3}}); err != nil {
		t.Fatal(err)
	}
	st, err = store.Status()
	if err != nil {
		t.Fatal(err)
	}
	if !st.Exists || st.Count != 3 || !st.Open {
		t.Errorf("Unexpected status: %+v", st)
	}
	if st.First == nil || st.First.Instant != 1 || st.Last == nil || st.Last.Instant != 3 {
		t.Errorf("Unexpected first/last: %v %v", st.First, st.Last)
	}

	if err := store.Delete(); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("Expected log file to be removed")
	}
}

func TestGenerate(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	events := Generate(r, 7, 1_000_000, 500)

	if len(events) != 7 {
		t.Fatalf("Expected 7 events, got %d", len(events))
	}
	if events[6].Instant != 1_000_000 {
		t.Errorf("Expected last instant 1000000, got %d", events[6].Instant)
	}
	for i, e := range events {
		wantKind := Start
		if i%2 == 1 {
			wantKind = Stop
		}
		if e.Kind != wantKind {
			t.Errorf("Event %d: expected %s, got %s", i, wantKind, e.Kind)
		}
		if i > 0 && e.Instant <= events[i-1].Instant {
			t.Errorf("Event %d: instants not increasing", i)
		}
	}
	if !IsOpen(events) {
		t.Error("Expected odd-length log to end open")
	}
}

func TestEventFormat(t *testing.T) {
	instant := time.Date(2024, 1, 20, 23, 30, 0, 0, time.UTC).Unix()
	east := time.FixedZone("UTC+2", 2*3600)

	e := Event{ID: 4, Kind: Stop, Instant: instant}
	if got := e.Format(east); got != "#4 stop @ 2024-01-21 01:30:00" {
		t.Errorf("Expected #4 stop @ 2024-01-21 01:30:00, got %s", got)
	}
	if got := e.Format(time.UTC); got != "#4 stop @ 2024-01-20 23:30:00" {
		t.Errorf("Expected #4 stop @ 2024-01-20 23:30:00, got %s", got)
	}

	synthetic := Event{Kind: Start, Instant: instant}
	if got := synthetic.Format(time.UTC); got != "start @ 2024-01-20 23:30:00" {
		t.Errorf("Expected start @ 2024-01-20 23:30:00, got %s", got)
	}
}
