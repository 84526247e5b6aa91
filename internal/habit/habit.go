// Package habit builds and mutates habits on top of the calendar engine.
package habit

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mjordahl/habitgrid/internal/calendar"
	"github.com/mjordahl/habitgrid/internal/models"
)

// New creates a habit with its day grid prebuilt over the rolling one-year
// window ending at today. A non-nil stopped date pre-completes the span
// between it and today. Habits with an empty name are rejected.
func New(name, today string, stopped *string) (models.Habit, error) {
	if name == "" {
		return models.Habit{}, fmt.Errorf("habit name must not be empty")
	}
	window, err := calendar.YearWindow(today)
	if err != nil {
		return models.Habit{}, err
	}

	var active *calendar.Range
	h := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		DateCreated: today,
	}
	if stopped != nil {
		if _, err := time.Parse(models.DateFormat, *stopped); err != nil {
			return models.Habit{}, fmt.Errorf("invalid stop date %q: %w", *stopped, err)
		}
		r := calendar.ActiveRange(*stopped, today)
		active = &r
		stop := *stopped
		h.DateStopped = &stop
	}

	end := window.End
	if active != nil && active.End > end {
		// A future stop date extends the grid past today so the
		// pre-scheduled span is actually representable.
		end = active.End
	}
	days, err := calendar.BuildGrid(window.Start, end, active)
	if err != nil {
		return models.Habit{}, err
	}
	h.Days = days
	return h, nil
}

// CheckIn marks today completed. Idempotent: checking in twice on the same
// day is not a toggle back to incomplete.
func CheckIn(h *models.Habit, today string) {
	h.Days = calendar.SetCompleted(h.Days, today, true)
}

// ToggleDay flips a single day's state, inserting an out-of-window date as
// completed.
func ToggleDay(h *models.Habit, date string) error {
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	h.Days = calendar.Toggle(h.Days, date)
	return nil
}

// Stop records a stop date on the habit and completes every day between the
// stop date and today, in either direction. Explicit completions outside
// that span are untouched.
func Stop(h *models.Habit, stopDate, today string) error {
	start, err := time.Parse(models.DateFormat, stopDate)
	if err != nil {
		return fmt.Errorf("invalid stop date %q: %w", stopDate, err)
	}
	end, err := time.Parse(models.DateFormat, today)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", today, err)
	}
	if end.Before(start) {
		start, end = end, start
	}

	stop := stopDate
	h.DateStopped = &stop
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		h.Days = calendar.SetCompleted(h.Days, d.Format(models.DateFormat), true)
	}
	return nil
}

// Resume clears the stop date. Completion history is left as-is.
func Resume(h *models.Habit) {
	h.DateStopped = nil
}

// Reset clears every completion on the habit.
func Reset(h *models.Habit) {
	calendar.Reset(h.Days)
}
