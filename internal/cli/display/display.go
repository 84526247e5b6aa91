package display

import (
	"fmt"
	"regexp"

	"github.com/mjordahl/habitgrid/internal/cli"
)

type DisplayCmd struct {
	Color  ColorCmd  `cmd:"" help:"Set the color used for completed days."`
	View   ViewCmd   `cmd:"" help:"Switch between list and grid layout."`
	Streak StreakCmd `cmd:"" help:"Choose streak or total-days summary for a habit."`
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type ColorCmd struct {
	Color string `arg:"" help:"Color as #rrggbb."`
}

func (c *ColorCmd) Run(ctx *cli.Context) error {
	if !colorPattern.MatchString(c.Color) {
		return fmt.Errorf("invalid color %q (expected #rrggbb)", c.Color)
	}

	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	doc.SetCompletedColor(c.Color)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Completed color set to %s\n", c.Color)
	return nil
}

type ViewCmd struct {
	Mode string `arg:"" enum:"list,grid" help:"View mode: list or grid."`
}

func (c *ViewCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	if !doc.SetViewMode(c.Mode) {
		return fmt.Errorf("invalid view mode %q", c.Mode)
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("View mode set to %s\n", c.Mode)
	return nil
}

type StreakCmd struct {
	Name string `arg:"" help:"Habit name."`
	Show string `arg:"" enum:"streak,total" help:"Summary to show: streak or total."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h := doc.FindHabitByName(c.Name)
	if h == nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	doc.SetShowStreak(h.ID, c.Show == "streak")
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Habit %q now shows %s\n", c.Name, c.Show)
	return nil
}
