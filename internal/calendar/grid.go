// Package calendar holds the pure date-grid and completion logic. Nothing in
// this package performs I/O or reads the wall clock; callers supply "today"
// explicitly so every function is deterministic and unit-testable.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/mjordahl/habitgrid/internal/models"
)

// Range is an inclusive span of calendar dates.
type Range struct {
	Start string
	End   string
}

// ActiveRange builds the auto-completed span for a habit with a stop date.
// The span always runs between the stop date and today regardless of which
// side of today the stop date falls on: a past stop date backfills history,
// a future one pre-schedules an end point.
func ActiveRange(stopDate, today string) Range {
	if stopDate < today {
		return Range{Start: stopDate, End: today}
	}
	return Range{Start: today, End: stopDate}
}

// parseDay parses a YYYY-MM-DD string into a UTC time value. All grid
// arithmetic happens in UTC, where days are uniformly 24 hours, so stepping
// by AddDate can never skip or duplicate a date the way local-time loops do
// across DST transitions.
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// BuildGrid generates one DayRecord per calendar day from the Sunday on or
// before windowStart through windowEnd inclusive. Days inside active (if
// non-nil) are marked completed; everything else starts incomplete.
func BuildGrid(windowStart, windowEnd string, active *Range) ([]models.DayRecord, error) {
	start, err := parseDay(windowStart)
	if err != nil {
		return nil, err
	}
	end, err := parseDay(windowEnd)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("window end %s precedes start %s", windowEnd, windowStart)
	}

	// Snap back to the Sunday that begins windowStart's week.
	start = start.AddDate(0, 0, -int(start.Weekday()))

	days := make([]models.DayRecord, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(models.DateFormat)
		completed := active != nil && date >= active.Start && date <= active.End
		days = append(days, models.DayRecord{Date: date, Completed: completed})
	}
	return days, nil
}

// YearWindow returns the rolling one-year lookback window ending at today.
func YearWindow(today string) (Range, error) {
	t, err := parseDay(today)
	if err != nil {
		return Range{}, err
	}
	return Range{
		Start: t.AddDate(-1, 0, 0).Format(models.DateFormat),
		End:   today,
	}, nil
}

// ApplyExplicit overlays explicit per-day records onto a generated grid.
// Explicit entries always win; dates missing from the grid are inserted and
// the result is re-sorted so the ascending-by-date invariant holds.
func ApplyExplicit(grid, explicit []models.DayRecord) []models.DayRecord {
	out := append([]models.DayRecord(nil), grid...)
	index := make(map[string]int, len(out))
	for i, d := range out {
		index[d.Date] = i
	}
	for _, e := range explicit {
		if i, ok := index[e.Date]; ok {
			out[i] = e
			continue
		}
		index[e.Date] = len(out)
		out = append(out, e)
	}
	sortDays(out)
	return out
}

// Toggle flips the completion state of the record matching date. A date with
// no record (toggled outside the generated window) is inserted as completed,
// never as a flip from false.
func Toggle(days []models.DayRecord, date string) []models.DayRecord {
	for i := range days {
		if days[i].Date == date {
			days[i].Completed = !days[i].Completed
			return days
		}
	}
	days = append(days, models.DayRecord{Date: date, Completed: true})
	sortDays(days)
	return days
}

// SetCompleted sets an exact completion state, inserting the record if the
// date is absent. Used by check-in, where re-running the action must stay
// idempotent rather than toggle.
func SetCompleted(days []models.DayRecord, date string, completed bool) []models.DayRecord {
	for i := range days {
		if days[i].Date == date {
			days[i].Completed = completed
			return days
		}
	}
	days = append(days, models.DayRecord{Date: date, Completed: completed})
	sortDays(days)
	return days
}

// Reset clears every record's completion flag without changing the set of
// dates present.
func Reset(days []models.DayRecord) {
	for i := range days {
		days[i].Completed = false
	}
}

func sortDays(days []models.DayRecord) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
}
