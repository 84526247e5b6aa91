package habits

import (
	"fmt"

	"github.com/mjordahl/habitgrid/internal/cli"
	"github.com/mjordahl/habitgrid/internal/habit"
	"github.com/mjordahl/habitgrid/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits in display order."`
	Rename HabitRenameCmd `cmd:"" help:"Rename a habit."`
	Remove HabitRemoveCmd `cmd:"" help:"Remove a habit permanently."`
	Move   HabitMoveCmd   `cmd:"" help:"Move a habit to a new position."`
	Stop   HabitStopCmd   `cmd:"" help:"Record a stop date and backfill completions."`
	Resume HabitResumeCmd `cmd:"" help:"Clear a habit's stop date."`
	Reset  HabitResetCmd  `cmd:"" help:"Clear all completions for a habit."`
	Log    HabitLogCmd    `cmd:"" help:"Show habit history (ASCII grid)."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show habit statistics."`
}

// findByName resolves a habit by its display name.
func findByName(doc *models.Document, name string) (*models.Habit, error) {
	h := doc.FindHabitByName(name)
	if h == nil {
		return nil, fmt.Errorf("habit %q not found", name)
	}
	return h, nil
}

type HabitAddCmd struct {
	Name    string `arg:"" help:"Habit name."`
	Stopped string `help:"Stop date in YYYY-MM-DD format; completes the span between it and today." default:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	// An empty name is a quiet no-op rather than an error.
	if c.Name == "" {
		return nil
	}

	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	if doc.FindHabitByName(c.Name) != nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	var stopped *string
	if c.Stopped != "" {
		stopped = &c.Stopped
	}

	h, err := habit.New(c.Name, ctx.Today(), stopped)
	if err != nil {
		return err
	}

	doc.AddHabit(h)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	if len(doc.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for i, h := range doc.Habits {
		status := ""
		if h.DateStopped != nil {
			status = fmt.Sprintf(" [stopped %s]", *h.DateStopped)
		}
		fmt.Printf("%d. %s%s\n", i+1, h.Name, status)
	}

	return nil
}

type HabitRenameCmd struct {
	Name    string `arg:"" help:"Current habit name."`
	NewName string `arg:"" help:"New habit name."`
}

func (c *HabitRenameCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h, err := findByName(doc, c.Name)
	if err != nil {
		return err
	}
	if c.NewName == "" {
		return nil
	}
	if other := doc.FindHabitByName(c.NewName); other != nil && other.ID != h.ID {
		return fmt.Errorf("habit with name %q already exists", c.NewName)
	}

	doc.RenameHabit(h.ID, c.NewName)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Renamed habit %q to %q\n", c.Name, c.NewName)
	return nil
}

type HabitRemoveCmd struct {
	Name string `arg:"" help:"Habit name to remove."`
}

func (c *HabitRemoveCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h, err := findByName(doc, c.Name)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	doc.RemoveHabit(h.ID)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Removed habit: %s\n", c.Name)
	return nil
}

type HabitMoveCmd struct {
	Name     string `arg:"" help:"Habit name to move."`
	Position int    `arg:"" help:"New 1-based position."`
}

func (c *HabitMoveCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h, err := findByName(doc, c.Name)
	if err != nil {
		return err
	}

	doc.MoveHabit(h.ID, c.Position-1)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Moved habit %q to position %d\n", c.Name, c.Position)
	return nil
}

type HabitStopCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Stop date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitStopCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h, err := findByName(doc, c.Name)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = ctx.Today()
	}
	if err := habit.Stop(h, date, ctx.Today()); err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Stopped habit %q as of %s\n", c.Name, date)
	return nil
}

type HabitResumeCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitResumeCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h, err := findByName(doc, c.Name)
	if err != nil {
		return err
	}

	habit.Resume(h)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Resumed habit %q\n", c.Name)
	return nil
}

type HabitResetCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitResetCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h, err := findByName(doc, c.Name)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	habit.Reset(h)
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Reset habit %q\n", c.Name)
	return nil
}
