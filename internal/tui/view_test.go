package tui

import (
	"testing"

	"github.com/mjordahl/habitgrid/internal/calendar"
)

func TestWeekColumns_PlacesDaysByWeekday(t *testing.T) {
	// Sunday 2025-11-30 through Saturday 2025-12-13: exactly two full weeks
	days, err := calendar.BuildGrid("2025-12-01", "2025-12-13", nil)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	weeks := weekColumns(days)
	if len(weeks) != 2 {
		t.Fatalf("Expected 2 week columns, got %d", len(weeks))
	}
	if d := weeks[0][0]; d == nil || d.Date != "2025-11-30" {
		t.Errorf("Expected 2025-11-30 in the first Sunday row, got %v", d)
	}
	// 2025-12-10 is a Wednesday
	if d := weeks[1][3]; d == nil || d.Date != "2025-12-10" {
		t.Errorf("Expected 2025-12-10 in the second Wednesday row, got %v", d)
	}
	if d := weeks[1][6]; d == nil || d.Date != "2025-12-13" {
		t.Errorf("Expected 2025-12-13 in the second Saturday row, got %v", d)
	}
}

func TestWeekColumns_InsertedEarlyDayKeepsRowsAligned(t *testing.T) {
	days, err := calendar.BuildGrid("2025-12-01", "2025-12-13", nil)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	// Toggle a Thursday well before the grid start; it is inserted at the
	// front of the sorted day list.
	days = calendar.Toggle(days, "2025-11-20")

	weeks := weekColumns(days)
	// Weeks of Nov 16, Nov 23 (empty), Nov 30, Dec 7.
	if len(weeks) != 4 {
		t.Fatalf("Expected 4 week columns, got %d", len(weeks))
	}

	if d := weeks[0][4]; d == nil || d.Date != "2025-11-20" || !d.Completed {
		t.Errorf("Expected completed 2025-11-20 in the first Thursday row, got %v", d)
	}
	for row := 0; row < 7; row++ {
		if weeks[1][row] != nil {
			t.Errorf("Expected the gap week to stay empty, found %s in row %d", weeks[1][row].Date, row)
		}
	}

	// The generated days must keep their weekday rows despite the insert.
	if d := weeks[2][0]; d == nil || d.Date != "2025-11-30" {
		t.Errorf("Expected 2025-11-30 to stay in a Sunday row, got %v", d)
	}
	if d := weeks[3][3]; d == nil || d.Date != "2025-12-10" {
		t.Errorf("Expected 2025-12-10 to stay in a Wednesday row, got %v", d)
	}
}

func TestWeekColumns_EmptyDays(t *testing.T) {
	if got := weekColumns(nil); got != nil {
		t.Errorf("Expected nil for no days, got %v", got)
	}
}
