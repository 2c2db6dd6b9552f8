package cli

import (
	"fmt"
	"time"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/stats"
)

type TodayCmd struct {
	Date string `help:"Show the dashboard for another date (YYYY-MM-DD)." default:""`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}
	day, err := dates.Parse(date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	due := stats.SelectDue(habits, day)
	if len(due) == 0 {
		fmt.Printf("No habits due on %s.\n", date)
		return nil
	}

	entries, err := ctx.Store.GetEntriesForDay(date)
	if err != nil {
		return err
	}
	completed := make(map[string]bool)
	for _, e := range entries {
		if e.Completed {
			completed[e.HabitID] = true
		}
	}

	if day.Equal(dates.Today(time.Local)) {
		fmt.Printf("Habits due today (%s):\n\n", date)
	} else {
		fmt.Printf("Habits due on %s:\n\n", date)
	}

	done := 0
	for _, habit := range due {
		status := "[ ]"
		if completed[habit.ID] {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", status, habit.Name)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(due))
	return nil
}
