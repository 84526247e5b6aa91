package habits

import (
	"testing"

	"github.com/mjordahl/habitgrid/internal/cli"
	"github.com/mjordahl/habitgrid/internal/storage"
)

func TestHabitAddCmd_EmptyNameIsSilentNoOp(t *testing.T) {
	ctx := &cli.Context{Store: storage.NewMemoryStore()}

	cmd := &HabitAddCmd{Name: ""}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Expected empty-name add to succeed silently, got: %v", err)
	}

	doc, err := ctx.Document()
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if len(doc.Habits) != 0 {
		t.Errorf("Expected no habits after empty-name add, got %d", len(doc.Habits))
	}

	saved, err := ctx.Store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if saved != nil {
		t.Error("Expected nothing persisted after empty-name add")
	}
}

func TestHabitAddCmd_AddsAndPersists(t *testing.T) {
	ctx := &cli.Context{Store: storage.NewMemoryStore()}

	cmd := &HabitAddCmd{Name: "Stretch"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	saved, err := ctx.Store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if saved == nil || len(saved.Habits) != 1 {
		t.Fatal("Expected one persisted habit")
	}
	if saved.Habits[0].Name != "Stretch" {
		t.Errorf("Persisted name = %q, want %q", saved.Habits[0].Name, "Stretch")
	}
	if len(saved.Habits[0].Days) == 0 {
		t.Error("Expected the habit's day grid to be prebuilt")
	}
}

func TestHabitAddCmd_RejectsDuplicateName(t *testing.T) {
	ctx := &cli.Context{Store: storage.NewMemoryStore()}

	if err := (&HabitAddCmd{Name: "Stretch"}).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := (&HabitAddCmd{Name: "Stretch"}).Run(ctx); err == nil {
		t.Error("Expected error adding a duplicate habit name")
	}
}
