package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-01-09")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	want := time.Date(2025, 1, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDate_EmptyDefaultsToToday(t *testing.T) {
	got, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	if !got.Equal(TruncateToDay(time.Now())) {
		t.Errorf("ParseDate(\"\") = %v, want today at midnight", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"01/09/2025", "2025-13-01", "tomorrow"} {
		if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDateFormat", input, err)
		}
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 1, 9, 14, 35, 12, 999, time.Local)
	got := TruncateToDay(in)
	want := time.Date(2025, 1, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("TruncateToDay = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 1, 9, 8, 0, 0, 0, time.Local)
	b := time.Date(2025, 1, 9, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected same day for two times on 2025-01-09")
	}
	if SameDay(b, c) {
		t.Error("expected different days for 2025-01-09 and 2025-01-10")
	}
}
