package storage

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-15", time.UTC)
	if err != nil {
		t.Fatalf("Failed to parse date: %v", err)
	}
	expected := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !date.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, date)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	hour, minute, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("Failed to parse time: %v", err)
	}
	if hour != 9 || minute != 5 {
		t.Errorf("Expected hour=9, minute=5, got hour=%d, minute=%d", hour, minute)
	}

	_, _, err = ParseTimeOfDay("99:99")
	if err == nil {
		t.Error("Expected error for invalid time 99:99")
	}
}

func TestParseWhen(t *testing.T) {
	fallback := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	result, err := ParseWhen("", fallback)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Equal(fallback) {
		t.Errorf("Expected fallback time, got %v", result)
	}

	result, err = ParseWhen("2024-01-15T14:30:00Z", fallback)
	if err != nil {
		t.Fatalf("Failed to parse ISO: %v", err)
	}
	expected := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}

	result, err = ParseWhen("14:30", fallback)
	if err != nil {
		t.Fatalf("Failed to parse HH:MM: %v", err)
	}
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}

	if _, err := ParseWhen("tomorrow", fallback); err == nil {
		t.Error("Expected error for unparseable value")
	}
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, 3, 9, 17, 45, 12, 0, time.UTC))
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDayStartSkippedMidnight(t *testing.T) {
	tests := []struct {
		zone string
		y    int
		m    time.Month
		d    int
		want string
	}{
		{"America/Santiago", 2024, time.September, 7, "2024-09-07 00:00 -04:00"},
		{"America/Santiago", 2024, time.September, 8, "2024-09-08 01:00 -03:00"},
		{"America/Santiago", 2024, time.September, 9, "2024-09-09 00:00 -03:00"},
		{"America/Santiago", 2024, time.August, 39, "2024-09-08 01:00 -03:00"},
		{"America/Havana", 2024, time.March, 10, "2024-03-10 01:00 -04:00"},
		{"UTC", 2024, time.February, 30, "2024-03-01 00:00 +00:00"},
	}
	for _, tt := range tests {
		loc, err := time.LoadLocation(tt.zone)
		if err != nil {
			t.Fatalf("LoadLocation(%s): %v", tt.zone, err)
		}
		got := DayStart(tt.y, tt.m, tt.d, loc)
		if s := got.Format("2006-01-02 15:04 -07:00"); s != tt.want {
			t.Errorf("DayStart(%d-%d-%d, %s) = %s, want %s", tt.y, tt.m, tt.d, tt.zone, s, tt.want)
		}
		// No earlier instant may still belong to the same date.
		if before := got.Add(-time.Second); before.Day() == got.Day() {
			t.Errorf("DayStart(%d-%d-%d, %s): %v is on the same date", tt.y, tt.m, tt.d, tt.zone, before)
		}
	}
}

func TestParseDateSkippedMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	date, err := ParseDate("2024-09-08", loc)
	if err != nil {
		t.Fatalf("Failed to parse date: %v", err)
	}
	if got := date.Format("2006-01-02"); got != "2024-09-08" {
		t.Errorf("Expected 2024-09-08, got %s", got)
	}
	if got := StartOfDay(date.Add(12 * time.Hour)); !got.Equal(date) {
		t.Errorf("Expected StartOfDay %v, got %v", date, got)
	}
}

func TestNow(t *testing.T) {
	now := Now()
	if now.Nanosecond() != 0 {
		t.Errorf("Expected no microseconds, got %d nanoseconds", now.Nanosecond())
	}
}
