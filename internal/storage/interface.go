package storage

import "github.com/mjordahl/habitgrid/internal/models"

// Provider persists a single Document. Implementations write the whole
// document on every Save; there are no field-level updates. A failed Save
// must leave the previously persisted document intact.
//
// Providers are not safe for concurrent use by multiple goroutines or
// processes; the application has exactly one logical writer.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Load returns the persisted document, or (nil, nil) when nothing has
	// been persisted yet. Callers treat an absent document as "start empty".
	Load() (*models.Document, error)

	// Save persists the document wholesale. Idempotent.
	Save(models.Document) error

	// Utils
	GetConfigPath() string
}
