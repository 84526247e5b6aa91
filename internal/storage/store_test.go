package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testProviders(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"memory": NewMemoryStore(),
		"json":   NewJSONStore(filepath.Join(dir, "habitgrid.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "habitgrid.db")),
	}
}

func TestProvider_LoadBeforeAnySave(t *testing.T) {
	for name, store := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			doc, err := store.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if doc != nil {
				t.Errorf("Expected nil document before first save, got %+v", doc)
			}
			if err := store.Close(); err != nil {
				t.Errorf("Close failed: %v", err)
			}
		})
	}
}

func TestProvider_SaveLoadRoundTrip(t *testing.T) {
	want := sampleDocument()

	for name, store := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if err := store.Save(want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got == nil {
				t.Fatal("Load returned nil after save")
			}
			if !reflect.DeepEqual(*got, want) {
				t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", *got, want)
			}
		})
	}
}

func TestProvider_SaveOverwritesWholeDocument(t *testing.T) {
	for name, store := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			first := sampleDocument()
			if err := store.Save(first); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			second := sampleDocument()
			second.Habits = second.Habits[:1]
			second.ViewMode = "list"
			if err := store.Save(second); err != nil {
				t.Fatalf("Second save failed: %v", err)
			}

			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got.Habits) != 1 {
				t.Errorf("Expected 1 habit after overwrite, got %d", len(got.Habits))
			}
			if got.ViewMode != "list" {
				t.Errorf("ViewMode = %q, want list", got.ViewMode)
			}
		})
	}
}

func TestMemoryStore_SavesAreIsolatedCopies(t *testing.T) {
	store := NewMemoryStore()
	doc := sampleDocument()
	if err := store.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the caller's document after save must not leak into the store
	doc.Habits[0].Name = "Changed"

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Habits[0].Name != "Meditate" {
		t.Error("MemoryStore shares state with the caller's document")
	}

	// And mutating a loaded copy must not change the stored document
	got.Habits[0].Name = "Changed again"
	reload, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reload.Habits[0].Name != "Meditate" {
		t.Error("MemoryStore returns aliased documents from Load")
	}
}

func TestJSONStore_Init(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config", "habitgrid.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc == nil || len(doc.Habits) != 0 {
		t.Error("Expected an empty default document after init")
	}

	if err := store.Init(); err == nil {
		t.Error("Expected error initializing twice")
	}
}

func TestJSONStore_CorruptFileFailsLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habitgrid.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	store := NewJSONStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("Expected error loading corrupt store")
	}
}

func TestJSONStore_FailedSaveKeepsPreviousDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habitgrid.json")
	store := NewJSONStore(path)

	if err := store.Save(sampleDocument()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Make the directory unwritable so the temp-file write fails; the
	// rename-based save must leave the original file untouched.
	if err := os.Chmod(dir, 0500); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	defer os.Chmod(dir, 0700)

	broken := sampleDocument()
	broken.ViewMode = "list"
	if err := store.Save(broken); err == nil {
		t.Skip("filesystem permits writes despite read-only directory")
	}

	if err := os.Chmod(dir, 0700); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ViewMode != "grid" {
		t.Errorf("Previous document was damaged by failed save: ViewMode = %q", got.ViewMode)
	}
}

func TestSQLiteStore_Init(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habitgrid.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc == nil || len(doc.Habits) != 0 {
		t.Error("Expected an empty default document after init")
	}

	// Init is safe to repeat and keeps the stored document
	if err := store.Save(sampleDocument()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("Second init failed: %v", err)
	}
	doc, err = store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Habits) != 2 {
		t.Errorf("Second init lost data: %d habits", len(doc.Habits))
	}
}

func TestSQLiteStore_ReopenAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habitgrid.db")

	store := NewSQLiteStore(path)
	if err := store.Save(sampleDocument()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	defer reopened.Close()
	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil || len(got.Habits) != 2 {
		t.Error("Document did not survive close and reopen")
	}
}
