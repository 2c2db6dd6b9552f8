package cli

import (
	"fmt"
)

type MarkCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Notes string `help:"Optional notes for this entry." default:""`
}

func (c *MarkCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	entry, err := ctx.Store.ToggleCompletion(habit.ID, date)
	if err != nil {
		return err
	}

	if c.Notes != "" {
		entry.Notes = c.Notes
		if err := ctx.Store.UpdateEntry(entry); err != nil {
			return err
		}
	}

	if entry.Completed {
		fmt.Printf("Marked habit %q complete for %s\n", c.Name, date)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, date)
	}
	return nil
}
