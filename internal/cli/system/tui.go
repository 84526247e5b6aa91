package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mjordahl/habitgrid/internal/cli"
	"github.com/mjordahl/habitgrid/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	model := tui.New(doc, ctx.ScheduleSave, ctx.Today())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Whatever edits the session made are flushed on the way out so the
	// final debounce window can't be lost.
	if err := ctx.Saver().Flush(); err != nil {
		return fmt.Errorf("failed to save on exit: %w", err)
	}
	return nil
}
