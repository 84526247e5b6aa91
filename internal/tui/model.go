// Package tui renders the habit completion grid and routes key presses to
// the calendar engine. Every mutation edits the shared document and nudges
// the debounced saver; nothing here writes storage directly.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mjordahl/habitgrid/internal/models"
)

type sessionState int

const (
	stateBrowse sessionState = iota
	stateAddHabit
)

type HabitFormModel struct {
	Name    string
	Stopped string
}

type Model struct {
	doc          *models.Document
	scheduleSave func()
	today        string

	state     sessionState
	keys      KeyMap
	help      help.Model
	form      *huh.Form
	habitForm *HabitFormModel

	selected int    // index into doc.Habits
	cursor   string // date under the grid cursor
	status   string
	quitting bool
	width    int
	height   int
}

func New(doc *models.Document, scheduleSave func(), today string) Model {
	return Model{
		doc:          doc,
		scheduleSave: scheduleSave,
		today:        today,
		state:        stateBrowse,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		cursor:       today,
		selected:     0,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) currentHabit() *models.Habit {
	if m.selected < 0 || m.selected >= len(m.doc.Habits) {
		return nil
	}
	return &m.doc.Habits[m.selected]
}

// markDirty schedules a debounced save after a mutation. The snapshot is
// taken by the callback on this goroutine, before the timer gets it.
func (m *Model) markDirty() {
	if m.scheduleSave != nil {
		m.scheduleSave()
	}
}
