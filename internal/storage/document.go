package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mjordahl/habitgrid/internal/models"
)

// EncodeDocument serializes a document for persistence or export. Defaults
// are applied first so an exported file always carries every field.
func EncodeDocument(doc models.Document) ([]byte, error) {
	doc.ApplyDefaults()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a persisted or imported document. Optional fields
// absent from older files get their defaults; a file without a habits list
// is rejected so a bad import never replaces good in-memory state.
func DecodeDocument(data []byte) (*models.Document, error) {
	var raw struct {
		Habits         *[]models.Habit `json:"habits"`
		CompletedColor string          `json:"completedColor"`
		ShowStreak     map[string]bool `json:"showStreak"`
		ViewMode       string          `json:"viewMode"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if raw.Habits == nil {
		return nil, fmt.Errorf("document has no habits list")
	}

	doc := &models.Document{
		Habits:         *raw.Habits,
		CompletedColor: raw.CompletedColor,
		ShowStreak:     raw.ShowStreak,
		ViewMode:       raw.ViewMode,
	}
	for i := range doc.Habits {
		if err := validateHabit(doc.Habits[i]); err != nil {
			return nil, err
		}
	}
	doc.ApplyDefaults()
	return doc, nil
}

func validateHabit(h models.Habit) error {
	if h.ID == "" {
		return fmt.Errorf("habit %q has no id", h.Name)
	}
	for _, d := range h.Days {
		if _, err := time.Parse(models.DateFormat, d.Date); err != nil {
			return fmt.Errorf("habit %q has invalid day %q: %w", h.Name, d.Date, err)
		}
	}
	return nil
}
