package calendar

import "github.com/mjordahl/habitgrid/internal/models"

// CompletedCount returns how many of the habit's days are completed.
func CompletedCount(days []models.DayRecord) int {
	n := 0
	for _, d := range days {
		if d.Completed {
			n++
		}
	}
	return n
}

// CurrentStreak counts consecutive completed days ending at the most recent
// day not after today. Dates strictly after today are skipped entirely: a
// pre-scheduled future stop range neither extends nor breaks the streak.
// The streak ends at the first incomplete eligible day.
func CurrentStreak(days []models.DayRecord, today string) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Date > today {
			continue
		}
		if !days[i].Completed {
			break
		}
		streak++
	}
	return streak
}

// EarliestCompleted returns the first completed date, relying on the
// ascending-by-date ordering of days. The second return is false when the
// habit has no completed days.
func EarliestCompleted(days []models.DayRecord) (string, bool) {
	for _, d := range days {
		if d.Completed {
			return d.Date, true
		}
	}
	return "", false
}
