package habit

import (
	"testing"
	"time"

	"github.com/mjordahl/habitgrid/internal/calendar"
	"github.com/mjordahl/habitgrid/internal/models"
)

const today = "2025-12-31" // Wednesday

func TestNew_FreshHabit(t *testing.T) {
	h, err := New("Meditate", today, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if h.ID == "" {
		t.Error("Expected a generated id")
	}
	if h.DateCreated != today {
		t.Errorf("DateCreated = %s, want %s", h.DateCreated, today)
	}
	if h.DateStopped != nil {
		t.Errorf("Expected no stop date, got %s", *h.DateStopped)
	}

	first, err := time.Parse(models.DateFormat, h.Days[0].Date)
	if err != nil {
		t.Fatalf("failed to parse first day: %v", err)
	}
	if first.Weekday() != time.Sunday {
		t.Errorf("Expected grid to start on a Sunday, got %s", first.Weekday())
	}
	if last := h.Days[len(h.Days)-1].Date; last != today {
		t.Errorf("Expected grid to end today, got %s", last)
	}

	if got := calendar.CompletedCount(h.Days); got != 0 {
		t.Errorf("Fresh habit has %d completed days, want 0", got)
	}
	if got := calendar.CurrentStreak(h.Days, today); got != 0 {
		t.Errorf("Fresh habit has streak %d, want 0", got)
	}
}

func TestNew_EmptyNameRejected(t *testing.T) {
	if _, err := New("", today, nil); err == nil {
		t.Error("Expected error for empty habit name")
	}
}

func TestNew_StoppedTenDaysAgo(t *testing.T) {
	stopped := "2025-12-21"
	h, err := New("Running", today, &stopped)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Inclusive range: Dec 21 through Dec 31 is 11 days
	if got := calendar.CompletedCount(h.Days); got != 11 {
		t.Errorf("CompletedCount = %d, want 11", got)
	}
	if got := calendar.CurrentStreak(h.Days, today); got != 11 {
		t.Errorf("CurrentStreak = %d, want 11", got)
	}
	if earliest, ok := calendar.EarliestCompleted(h.Days); !ok || earliest != stopped {
		t.Errorf("EarliestCompleted = (%s, %v), want (%s, true)", earliest, ok, stopped)
	}
}

func TestNew_FutureStopExtendsGrid(t *testing.T) {
	stopped := "2026-01-05"
	h, err := New("Wind down", today, &stopped)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if last := h.Days[len(h.Days)-1].Date; last != stopped {
		t.Errorf("Expected grid to extend to %s, got %s", stopped, last)
	}
	// Today through Jan 5 is 6 days
	if got := calendar.CompletedCount(h.Days); got != 6 {
		t.Errorf("CompletedCount = %d, want 6", got)
	}
	// The future days must not inflate the streak past today
	if got := calendar.CurrentStreak(h.Days, today); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
}

func TestNew_InvalidStopDate(t *testing.T) {
	bad := "not-a-date"
	if _, err := New("Habit", today, &bad); err == nil {
		t.Error("Expected error for invalid stop date")
	}
}

func TestCheckIn_Idempotent(t *testing.T) {
	h, err := New("Stretch", today, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	CheckIn(&h, today)
	CheckIn(&h, today)

	if got := calendar.CompletedCount(h.Days); got != 1 {
		t.Errorf("CompletedCount = %d after double check-in, want 1", got)
	}
	if got := calendar.CurrentStreak(h.Days, today); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
}

func TestToggleDay_OutsideGridInsertsSorted(t *testing.T) {
	h, err := New("Read", today, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	before := len(h.Days)
	if err := ToggleDay(&h, "2020-06-15"); err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}

	if len(h.Days) != before+1 {
		t.Fatalf("Expected %d days, got %d", before+1, len(h.Days))
	}
	if h.Days[0].Date != "2020-06-15" || !h.Days[0].Completed {
		t.Errorf("Expected 2020-06-15 inserted first as completed, got %+v", h.Days[0])
	}
	for i := 1; i < len(h.Days); i++ {
		if h.Days[i].Date <= h.Days[i-1].Date {
			t.Errorf("Days not sorted ascending: %s after %s", h.Days[i].Date, h.Days[i-1].Date)
		}
	}
}

func TestToggleDay_InvalidDate(t *testing.T) {
	h, err := New("Read", today, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := ToggleDay(&h, "12/31/2025"); err == nil {
		t.Error("Expected error for non-canonical date")
	}
}

func TestStop_BackfillsToToday(t *testing.T) {
	h, err := New("Yoga", today, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := Stop(&h, "2025-12-25", today); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if h.DateStopped == nil || *h.DateStopped != "2025-12-25" {
		t.Error("Expected stop date to be recorded")
	}
	// Dec 25 through Dec 31 is 7 days
	if got := calendar.CompletedCount(h.Days); got != 7 {
		t.Errorf("CompletedCount = %d, want 7", got)
	}

	Resume(&h)
	if h.DateStopped != nil {
		t.Error("Expected stop date cleared after resume")
	}
	if got := calendar.CompletedCount(h.Days); got != 7 {
		t.Errorf("Resume must not touch history; CompletedCount = %d, want 7", got)
	}
}

func TestReset_ClearsAllCompletions(t *testing.T) {
	stopped := "2025-12-21"
	h, err := New("Running", today, &stopped)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	before := len(h.Days)
	Reset(&h)

	if len(h.Days) != before {
		t.Errorf("Reset changed the day count: %d -> %d", before, len(h.Days))
	}
	if got := calendar.CompletedCount(h.Days); got != 0 {
		t.Errorf("CompletedCount = %d after reset, want 0", got)
	}
}
