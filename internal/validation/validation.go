package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/mjordahl/habitgrid/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyHabitName  ConflictType = "empty_habit_name"
	ConflictDuplicateID     ConflictType = "duplicate_habit_id"
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictDuplicateDay    ConflictType = "duplicate_day"
	ConflictUnsortedDays    ConflictType = "unsorted_days"
	ConflictInvalidColor    ConflictType = "invalid_color"
	ConflictInvalidViewMode ConflictType = "invalid_view_mode"
	ConflictDanglingPref    ConflictType = "dangling_display_pref"
)

// Conflict represents a detected problem in a document
type Conflict struct {
	Type        ConflictType
	Description string
	HabitID     string // ID of the habit involved (if applicable)
	Date        string // YYYY-MM-DD (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validator checks documents for structural problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateDocument checks a whole document: habit invariants, display
// preferences, and cross-references between them.
func (v *Validator) ValidateDocument(doc *models.Document) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seenIDs := make(map[string]bool)
	for _, h := range doc.Habits {
		if h.Name == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyHabitName,
				Description: fmt.Sprintf("habit %s has an empty name", h.ID),
				HabitID:     h.ID,
			})
		}
		if seenIDs[h.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("habit id %s appears more than once", h.ID),
				HabitID:     h.ID,
			})
		}
		seenIDs[h.ID] = true

		result.Conflicts = append(result.Conflicts, v.validateHabit(h)...)
	}

	if doc.CompletedColor != "" && !colorPattern.MatchString(doc.CompletedColor) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidColor,
			Description: fmt.Sprintf("completed color %q is not a #rrggbb value", doc.CompletedColor),
		})
	}

	if doc.ViewMode != "" && doc.ViewMode != models.ViewModeList && doc.ViewMode != models.ViewModeGrid {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidViewMode,
			Description: fmt.Sprintf("view mode %q is not one of list, grid", doc.ViewMode),
		})
	}

	for id := range doc.ShowStreak {
		if !seenIDs[id] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDanglingPref,
				Description: fmt.Sprintf("display preference references unknown habit %s", id),
				HabitID:     id,
			})
		}
	}

	return result
}

func (v *Validator) validateHabit(h models.Habit) []Conflict {
	var conflicts []Conflict

	if _, err := time.Parse(models.DateFormat, h.DateCreated); err != nil {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictInvalidDate,
			Description: fmt.Sprintf("habit %q has invalid creation date %q", h.Name, h.DateCreated),
			HabitID:     h.ID,
			Date:        h.DateCreated,
		})
	}
	if h.DateStopped != nil {
		if _, err := time.Parse(models.DateFormat, *h.DateStopped); err != nil {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("habit %q has invalid stop date %q", h.Name, *h.DateStopped),
				HabitID:     h.ID,
				Date:        *h.DateStopped,
			})
		}
	}

	seenDays := make(map[string]bool)
	prev := ""
	for _, d := range h.Days {
		if _, err := time.Parse(models.DateFormat, d.Date); err != nil {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("habit %q has invalid day %q", h.Name, d.Date),
				HabitID:     h.ID,
				Date:        d.Date,
			})
			continue
		}
		if seenDays[d.Date] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateDay,
				Description: fmt.Sprintf("habit %q records %s twice", h.Name, d.Date),
				HabitID:     h.ID,
				Date:        d.Date,
			})
		}
		seenDays[d.Date] = true
		if prev != "" && d.Date < prev {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictUnsortedDays,
				Description: fmt.Sprintf("habit %q has %s out of order", h.Name, d.Date),
				HabitID:     h.ID,
				Date:        d.Date,
			})
		}
		prev = d.Date
	}

	return conflicts
}
