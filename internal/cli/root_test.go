package cli

import (
	"testing"
	"time"

	"github.com/mjordahl/habitgrid/internal/autosave"
	"github.com/mjordahl/habitgrid/internal/habit"
	"github.com/mjordahl/habitgrid/internal/storage"
)

func TestDocument_StartsEmptyWhenNothingPersisted(t *testing.T) {
	ctx := &Context{Store: storage.NewMemoryStore()}

	doc, err := ctx.Document()
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if len(doc.Habits) != 0 {
		t.Errorf("Expected empty document, got %d habits", len(doc.Habits))
	}
	if doc.ViewMode == "" || doc.CompletedColor == "" {
		t.Error("Expected defaults applied to a fresh document")
	}
}

// Saves fire on the debounce timer's goroutine while the event loop keeps
// editing the document. ScheduleSave must hand the timer a snapshot, never
// the live slices, so persisting can overlap further edits safely.
func TestScheduleSave_PersistsSnapshotsDuringEdits(t *testing.T) {
	ctx := &Context{Store: storage.NewMemoryStore()}
	ctx.saver = autosave.New(time.Millisecond)

	doc, err := ctx.Document()
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	h, err := habit.New("Read", "2025-12-31", nil)
	if err != nil {
		t.Fatalf("habit.New failed: %v", err)
	}
	doc.AddHabit(h)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if err := habit.ToggleDay(&doc.Habits[0], "2025-12-31"); err != nil {
				t.Errorf("ToggleDay failed: %v", err)
				return
			}
			ctx.ScheduleSave()
			if i%20 == 0 {
				time.Sleep(2 * time.Millisecond)
			}
		}
	}()
	<-done

	if err := ctx.Saver().Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	saved, err := ctx.Store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if saved == nil || len(saved.Habits) != 1 {
		t.Fatal("Expected the final document to be persisted")
	}
	if saved.Habits[0].Name != "Read" {
		t.Errorf("Persisted habit name = %q, want %q", saved.Habits[0].Name, "Read")
	}
}

func TestScheduleSave_WithoutLoadedDocumentIsANoOp(t *testing.T) {
	ctx := &Context{Store: storage.NewMemoryStore()}
	ctx.ScheduleSave()

	if err := ctx.Saver().Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	saved, err := ctx.Store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if saved != nil {
		t.Error("Expected nothing persisted when no document is loaded")
	}
}
