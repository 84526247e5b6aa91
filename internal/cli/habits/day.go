package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/mjordahl/habitgrid/internal/calendar"
	"github.com/mjordahl/habitgrid/internal/cli"
	"github.com/mjordahl/habitgrid/internal/habit"
	"github.com/mjordahl/habitgrid/internal/models"
)

type DayCmd struct {
	Toggle  DayToggleCmd  `cmd:"" help:"Toggle a day's completion state."`
	Checkin DayCheckinCmd `cmd:"" help:"Mark today completed (idempotent)."`
}

type DayToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DayToggleCmd) Run(ctx *cli.Context) error {
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
	if err := habit.ToggleDay(h, date); err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	state := "incomplete"
	for _, d := range h.Days {
		if d.Date == date && d.Completed {
			state = "completed"
			break
		}
	}
	fmt.Printf("Marked %s %s for habit %q\n", date, state, c.Name)
	return nil
}

type DayCheckinCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *DayCheckinCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	h, err := findByName(doc, c.Name)
	if err != nil {
		return err
	}

	habit.CheckIn(h, ctx.Today())
	if err := ctx.Save(); err != nil {
		return err
	}

	fmt.Printf("Checked in habit %q for %s\n", c.Name, ctx.Today())
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	if len(doc.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		h, err := findByName(doc, c.Habit)
		if err != nil {
			return err
		}
		selected = []models.Habit{*h}
	} else {
		selected = doc.Habits
	}

	end, err := time.Parse(models.DateFormat, ctx.Today())
	if err != nil {
		return err
	}
	start := end.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	maxNameLen := 20
	fmt.Print("Habit               ")
	for i := 0; i < c.Days; i++ {
		day := start.AddDate(0, 0, i)
		fmt.Printf(" %5s", day.Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Print("------")
	}
	fmt.Println()

	for _, h := range selected {
		name := h.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		completed := make(map[string]bool, len(h.Days))
		for _, d := range h.Days {
			if d.Completed {
				completed[d.Date] = true
			}
		}

		for i := 0; i < c.Days; i++ {
			day := start.AddDate(0, 0, i).Format(models.DateFormat)
			if completed[day] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

type HabitStatsCmd struct {
	Name string `arg:"" optional:"" help:"Habit name (default: all habits)."`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	doc, err := ctx.Document()
	if err != nil {
		return err
	}

	var selected []models.Habit
	if c.Name != "" {
		h, err := findByName(doc, c.Name)
		if err != nil {
			return err
		}
		selected = []models.Habit{*h}
	} else {
		selected = doc.Habits
	}

	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Today()
	for _, h := range selected {
		fmt.Printf("%s\n", h.Name)
		fmt.Printf("  completed days: %d\n", calendar.CompletedCount(h.Days))
		fmt.Printf("  current streak: %d\n", calendar.CurrentStreak(h.Days, today))
		if earliest, ok := calendar.EarliestCompleted(h.Days); ok {
			fmt.Printf("  first completed: %s\n", earliest)
		} else {
			fmt.Printf("  first completed: never\n")
		}
	}

	return nil
}
