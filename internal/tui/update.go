package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mjordahl/habitgrid/internal/habit"
	"github.com/mjordahl/habitgrid/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.state == stateAddHabit {
			return m.updateAddHabit(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.state == stateAddHabit && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.doc.Habits)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.PrevDay):
		m.cursor = shiftDate(m.cursor, -1)

	case key.Matches(msg, m.keys.NextDay):
		if m.cursor < m.today {
			m.cursor = shiftDate(m.cursor, 1)
		}

	case key.Matches(msg, m.keys.PrevWeek):
		m.cursor = shiftDate(m.cursor, -7)

	case key.Matches(msg, m.keys.NextWeek):
		if next := shiftDate(m.cursor, 7); next <= m.today {
			m.cursor = next
		} else {
			m.cursor = m.today
		}

	case key.Matches(msg, m.keys.ToggleDay):
		if h := m.currentHabit(); h != nil {
			if err := habit.ToggleDay(h, m.cursor); err == nil {
				m.status = fmt.Sprintf("toggled %s for %s", m.cursor, h.Name)
				m.markDirty()
			}
		}

	case key.Matches(msg, m.keys.CheckIn):
		if h := m.currentHabit(); h != nil {
			habit.CheckIn(h, m.today)
			m.status = fmt.Sprintf("checked in %s", h.Name)
			m.markDirty()
		}

	case key.Matches(msg, m.keys.Streak):
		if h := m.currentHabit(); h != nil {
			m.doc.SetShowStreak(h.ID, !m.doc.ShowStreak[h.ID])
			m.markDirty()
		}

	case key.Matches(msg, m.keys.View):
		if m.doc.ViewMode == models.ViewModeList {
			m.doc.SetViewMode(models.ViewModeGrid)
		} else {
			m.doc.SetViewMode(models.ViewModeList)
		}
		m.markDirty()

	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = stateAddHabit
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateAddHabit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.state = stateBrowse
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		var stopped *string
		if s := strings.TrimSpace(m.habitForm.Stopped); s != "" {
			stopped = &s
		}
		h, err := habit.New(strings.TrimSpace(m.habitForm.Name), m.today, stopped)
		if err != nil {
			m.status = err.Error()
		} else if m.doc.AddHabit(h) {
			m.selected = len(m.doc.Habits) - 1
			m.status = fmt.Sprintf("added %s", h.Name)
			m.markDirty()
		}
		m.state = stateBrowse
		m.form = nil
	case huh.StateAborted:
		m.state = stateBrowse
		m.form = nil
	}

	return m, cmd
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Stop Date (YYYY-MM-DD)").
				Description("Leave empty for a fresh habit").
				Value(&fm.Stopped).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse(models.DateFormat, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// shiftDate moves a canonical date by n days. Arithmetic happens in UTC so
// cursor movement is stable across DST transitions.
func shiftDate(date string, n int) string {
	t, err := time.Parse(models.DateFormat, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(models.DateFormat)
}
