package cli

import (
	"fmt"
	"time"

	"github.com/mjordahl/habitgrid/internal/autosave"
	"github.com/mjordahl/habitgrid/internal/backup"
	"github.com/mjordahl/habitgrid/internal/logger"
	"github.com/mjordahl/habitgrid/internal/models"
	"github.com/mjordahl/habitgrid/internal/storage"
)

// Context carries the open store and the in-memory document through every
// command. The document is loaded lazily and held as the single source of
// truth; saves write it back wholesale.
type Context struct {
	Store storage.Provider
	Debug bool

	doc   *models.Document
	saver *autosave.Saver
}

// Document returns the in-memory document, loading it from the store on
// first use. A store with nothing persisted yields an empty document.
func (c *Context) Document() (*models.Document, error) {
	if c.doc != nil {
		return c.doc, nil
	}
	doc, err := c.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc == nil {
		doc = models.NewDocument()
	}
	doc.ApplyDefaults()
	c.doc = doc
	return c.doc, nil
}

// SetDocument replaces the in-memory document wholesale (import).
func (c *Context) SetDocument(doc *models.Document) {
	c.doc = doc
}

// Save persists the in-memory document immediately.
func (c *Context) Save() error {
	if c.doc == nil {
		return nil
	}
	if err := c.Store.Save(*c.doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Saver returns the shared debounced saver, creating it on first use.
func (c *Context) Saver() *autosave.Saver {
	if c.saver == nil {
		c.saver = autosave.New(autosave.DefaultDelay)
	}
	return c.saver
}

// ScheduleSave snapshots the document on the calling goroutine and hands only
// the snapshot to the debounce timer. The TUI calls this on every mutation;
// the live document is never read off the event loop, so a firing save cannot
// observe a half-applied edit.
func (c *Context) ScheduleSave() {
	if c.doc == nil {
		return
	}
	snap := c.doc.Clone()
	c.Saver().Trigger(func() error {
		return c.Store.Save(*snap)
	})
}

// Today returns the current date in canonical form. Commands take today as
// a value here so the engine packages stay clock-free.
func (c *Context) Today() string {
	return time.Now().Format(models.DateFormat)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
