package models

// DateFormat is the canonical serialization for calendar dates.
const DateFormat = "2006-01-02"

// Defaults for optional Document fields, applied when a persisted or
// imported document predates the field.
const (
	DefaultCompletedColor = "#18181b"
	DefaultViewMode       = ViewModeList
)

const (
	ViewModeList = "list"
	ViewModeGrid = "grid"
)

// DayRecord is a single day's completion state for a habit. Records are
// immutable snapshots; mutation replaces the record wholesale.
type DayRecord struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}

// Habit is a tracked recurring activity. Days is sorted ascending by date
// and contains no duplicate dates.
type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	DateCreated string      `json:"dateCreated"`
	DateStopped *string     `json:"dateStopped,omitempty"`
	Days        []DayRecord `json:"days"`
}

// Document is the complete persisted unit: all habits plus display
// preferences. Habit order is user-significant and survives persistence.
type Document struct {
	Habits         []Habit         `json:"habits"`
	CompletedColor string          `json:"completedColor"`
	ShowStreak     map[string]bool `json:"showStreak"`
	ViewMode       string          `json:"viewMode"`
}

// NewDocument returns an empty document with all defaults applied.
func NewDocument() *Document {
	doc := &Document{}
	doc.ApplyDefaults()
	return doc
}

// ApplyDefaults fills optional fields that are absent from older or
// hand-edited documents.
func (d *Document) ApplyDefaults() {
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.CompletedColor == "" {
		d.CompletedColor = DefaultCompletedColor
	}
	if d.ShowStreak == nil {
		d.ShowStreak = map[string]bool{}
	}
	if d.ViewMode == "" {
		d.ViewMode = DefaultViewMode
	}
}

// AddHabit appends a habit to the document. Habits with an empty name are
// ignored rather than rejected with an error.
func (d *Document) AddHabit(h Habit) bool {
	if h.Name == "" {
		return false
	}
	d.Habits = append(d.Habits, h)
	return true
}

// FindHabit returns a pointer into the document's habit slice, or nil if no
// habit has the given id.
func (d *Document) FindHabit(id string) *Habit {
	for i := range d.Habits {
		if d.Habits[i].ID == id {
			return &d.Habits[i]
		}
	}
	return nil
}

// FindHabitByName returns the first habit with the given name, or nil.
func (d *Document) FindHabitByName(name string) *Habit {
	for i := range d.Habits {
		if d.Habits[i].Name == name {
			return &d.Habits[i]
		}
	}
	return nil
}

// RemoveHabit deletes the habit with the given id, along with its display
// preference entry. Returns false if the habit does not exist.
func (d *Document) RemoveHabit(id string) bool {
	for i := range d.Habits {
		if d.Habits[i].ID == id {
			d.Habits = append(d.Habits[:i], d.Habits[i+1:]...)
			delete(d.ShowStreak, id)
			return true
		}
	}
	return false
}

// RenameHabit sets a new name on the habit with the given id. An empty name
// is ignored.
func (d *Document) RenameHabit(id, name string) bool {
	if name == "" {
		return false
	}
	h := d.FindHabit(id)
	if h == nil {
		return false
	}
	h.Name = name
	return true
}

// MoveHabit moves the habit with the given id to position index, clamping
// index to the valid range. Order is preserved for all other habits.
func (d *Document) MoveHabit(id string, index int) bool {
	from := -1
	for i := range d.Habits {
		if d.Habits[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return false
	}
	if index < 0 {
		index = 0
	}
	if index > len(d.Habits)-1 {
		index = len(d.Habits) - 1
	}
	if index == from {
		return true
	}
	h := d.Habits[from]
	d.Habits = append(d.Habits[:from], d.Habits[from+1:]...)
	d.Habits = append(d.Habits[:index], append([]Habit{h}, d.Habits[index:]...)...)
	return true
}

// SetCompletedColor updates the grid color used for completed days.
func (d *Document) SetCompletedColor(color string) {
	if color == "" {
		color = DefaultCompletedColor
	}
	d.CompletedColor = color
}

// SetViewMode switches between the list and grid layouts. Unknown modes are
// ignored.
func (d *Document) SetViewMode(mode string) bool {
	if mode != ViewModeList && mode != ViewModeGrid {
		return false
	}
	d.ViewMode = mode
	return true
}

// SetShowStreak records whether a habit's summary shows its current streak
// (true) or its total completed days (false).
func (d *Document) SetShowStreak(habitID string, show bool) {
	if d.ShowStreak == nil {
		d.ShowStreak = map[string]bool{}
	}
	d.ShowStreak[habitID] = show
}

// Clone returns a deep copy of the document, used to snapshot state for
// import rollback and by the in-memory store.
func (d *Document) Clone() *Document {
	out := &Document{
		CompletedColor: d.CompletedColor,
		ViewMode:       d.ViewMode,
	}
	out.Habits = make([]Habit, len(d.Habits))
	for i, h := range d.Habits {
		hc := h
		if h.DateStopped != nil {
			stopped := *h.DateStopped
			hc.DateStopped = &stopped
		}
		if h.Days != nil {
			hc.Days = make([]DayRecord, len(h.Days))
			copy(hc.Days, h.Days)
		}
		out.Habits[i] = hc
	}
	out.ShowStreak = make(map[string]bool, len(d.ShowStreak))
	for k, v := range d.ShowStreak {
		out.ShowStreak[k] = v
	}
	return out
}
