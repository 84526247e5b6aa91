package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mjordahl/habitgrid/internal/calendar"
	"github.com/mjordahl/habitgrid/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == stateAddHabit && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("habitgrid"))
	b.WriteString("\n\n")

	if len(m.doc.Habits) == 0 {
		b.WriteString(habitStyle.Render("No habits yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		for i, h := range m.doc.Habits {
			line := fmt.Sprintf("%s  %s", h.Name, statStyle.Render(m.summary(h)))
			if i == m.selected {
				line = selectedHabitStyle.Render("> " + line)
			} else {
				line = habitStyle.Render("  " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")

			if m.doc.ViewMode == models.ViewModeGrid && i == m.selected {
				b.WriteString(m.renderGrid(h))
				b.WriteString("\n")
			}
		}

		if m.doc.ViewMode == models.ViewModeList {
			if h := m.currentHabit(); h != nil {
				b.WriteString("\n")
				b.WriteString(m.renderGrid(*h))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("cursor: %s", m.cursor)))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

// summary renders the habit's headline stat, honoring the streak/total
// display preference.
func (m Model) summary(h models.Habit) string {
	if m.doc.ShowStreak[h.ID] {
		return fmt.Sprintf("%d day streak", calendar.CurrentStreak(h.Days, m.today))
	}
	return fmt.Sprintf("%d days done", calendar.CompletedCount(h.Days))
}

// weekColumns places days into Sunday-to-Saturday columns by calendar
// position. Placement goes by each date's weekday, not by list index, so a
// day toggled in before the generated window cannot shift later columns off
// their rows. Weeks with no recorded days stay empty.
func weekColumns(days []models.DayRecord) [][7]*models.DayRecord {
	if len(days) == 0 {
		return nil
	}
	first, err := time.Parse(models.DateFormat, days[0].Date)
	if err != nil {
		return nil
	}
	weekStart := first.AddDate(0, 0, -int(first.Weekday()))

	var weeks [][7]*models.DayRecord
	for i := range days {
		t, err := time.Parse(models.DateFormat, days[i].Date)
		if err != nil {
			continue
		}
		col := int(t.Sub(weekStart).Hours()) / (24 * 7)
		for col >= len(weeks) {
			weeks = append(weeks, [7]*models.DayRecord{})
		}
		weeks[col][int(t.Weekday())] = &days[i]
	}
	return weeks
}

// renderGrid draws the habit's days as calendar-week columns, seven rows
// from Sunday to Saturday.
func (m Model) renderGrid(h models.Habit) string {
	weeks := weekColumns(h.Days)
	if len(weeks) == 0 {
		return ""
	}

	// Clip to the most recent weeks that fit the terminal.
	maxWeeks := 52
	if m.width > 0 {
		if fit := (m.width - 8) / 2; fit > 0 && fit < maxWeeks {
			maxWeeks = fit
		}
	}
	if len(weeks) > maxWeeks {
		weeks = weeks[len(weeks)-maxWeeks:]
	}

	completed := completedCellStyle(m.doc.CompletedColor)
	labels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	var b strings.Builder
	for row := 0; row < 7; row++ {
		b.WriteString(statStyle.Render(fmt.Sprintf("%4s ", labels[row])))
		for _, week := range weeks {
			d := week[row]
			if d == nil {
				b.WriteString("  ")
				continue
			}
			cell := "·"
			style := emptyCellStyle
			if d.Completed {
				cell = "■"
				style = completed
			}
			if d.Date == m.cursor {
				style = cursorStyle
			}
			b.WriteString(style.Render(cell))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
