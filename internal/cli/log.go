package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
)

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only." default:""`
}

func (c *LogCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	var selected []models.Habit
	if c.Habit != "" {
		for _, h := range habits {
			if h.Name == c.Habit {
				selected = []models.Habit{h}
				break
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	} else {
		selected = habits
	}

	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	end := dates.Today(time.Local)
	start := end.AddDays(-(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const nameWidth = 20
	fmt.Print(pad("Habit", nameWidth))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", start.AddDays(i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*c.Days))

	for _, habit := range selected {
		fmt.Print(pad(truncate(habit.Name, nameWidth), nameWidth))

		entries, err := ctx.Store.GetEntriesForHabitRange(habit.ID, start.String(), end.String())
		if err != nil {
			return err
		}
		completed := make(map[string]bool)
		for _, e := range entries {
			if e.Completed {
				completed[e.Date] = true
			}
		}

		for i := 0; i < c.Days; i++ {
			if completed[start.AddDays(i).String()] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
