package cli

import (
	"fmt"
	"time"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/stats"
)

type CalendarCmd struct {
	Habit string `arg:"" help:"Habit name."`
	Month string `help:"Month to show in YYYY-MM format (default: current month)." default:""`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	var year int
	var month time.Month
	if c.Month == "" {
		today := dates.Today(time.Local)
		year, month = today.Year(), today.Month()
	} else {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", c.Month)
		}
		year, month = t.Year(), t.Month()
	}

	first := dates.New(year, month, 1)
	last := first.AddDays(daysInMonth(year, month) - 1)

	entries, err := ctx.Store.GetEntriesForHabitRange(habit.ID, first.String(), last.String())
	if err != nil {
		return err
	}
	completed := make(map[string]bool)
	for _, e := range entries {
		if e.Completed {
			completed[e.Date] = true
		}
	}

	fmt.Printf("%s — %s %d\n\n", habit.Name, month, year)
	fmt.Println(" Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	// Leading blanks up to the first day's weekday.
	for i := 0; i < int(first.Weekday()); i++ {
		fmt.Print("     ")
	}

	for d := first; !d.After(last); d = d.AddDays(1) {
		marker := " "
		switch {
		case completed[d.String()]:
			marker = "x"
		case stats.DueOn(habit, d):
			marker = "."
		}
		fmt.Printf(" %2d%s ", d.DayOfMonth(), marker)
		if d.Weekday() == time.Saturday {
			fmt.Println()
		}
	}
	if last.Weekday() != time.Saturday {
		fmt.Println()
	}

	fmt.Println("\nx = completed, . = due but not completed")
	return nil
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
