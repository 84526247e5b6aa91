package documents

import (
	"fmt"
	"os"

	"github.com/mjordahl/habitgrid/internal/cli"
	"github.com/mjordahl/habitgrid/internal/storage"
	"github.com/mjordahl/habitgrid/internal/validation"
)

type ExportCmd struct {
	File string `arg:"" optional:"" help:"Destination file (default: stdout)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	data, err := storage.EncodeDocument(*doc)
	if err != nil {
		return err
	}

	if c.File == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.File, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported document to %s\n", c.File)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Document JSON file to import."`
}

// Run replaces the whole in-memory document with the imported one. A file
// that fails parsing or validation changes nothing.
func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	doc, err := storage.DecodeDocument(data)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	result := validation.New().ValidateDocument(doc)
	if result.HasConflicts() {
		return fmt.Errorf("import rejected:\n%s", result.FormatReport())
	}

	ctx.PerformAutomaticBackup()
	ctx.SetDocument(doc)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Imported %d habit(s) from %s\n", len(doc.Habits), c.File)
	return nil
}
