package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(parsed); got != "2026-03-01" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("03/01/2026"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	if !SameDate(morning, evening) {
		t.Fatalf("same calendar day should match")
	}
	if SameDate(evening, nextDay) {
		t.Fatalf("different days should not match")
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)

	dates := DateRange(start, 3)
	if len(dates) != 3 {
		t.Fatalf("len = %d, want 3", len(dates))
	}
	want := []string{"2026-03-01", "2026-03-02", "2026-03-03"}
	for i, d := range dates {
		if FormatDate(d) != want[i] {
			t.Fatalf("dates[%d] = %s, want %s", i, FormatDate(d), want[i])
		}
	}
}

func TestDateRangeEmpty(t *testing.T) {
	if got := DateRange(time.Now(), 0); len(got) != 0 {
		t.Fatalf("expected empty range, got %d entries", len(got))
	}
}
