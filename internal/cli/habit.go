package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/storage"
	"github.com/jmallicoat/tally/internal/validation"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	Edit      HabitEditCmd      `cmd:"" help:"Edit an existing habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit (stops it counting as due)."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Reactivate an archived habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit and all its entries."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
	Color       string `help:"Color tag for display." default:""`
	Category    string `help:"Optional category label." default:""`
	Frequency   string `help:"Frequency policy: daily, weekly, or monthly." enum:"daily,weekly,monthly" default:"daily"`
	Days        string `help:"Target weekdays for weekly habits (e.g. mon,wed,fri)." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	var targetDays []time.Weekday
	if c.Days != "" {
		var err error
		targetDays, err = ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Category:    c.Category,
		Frequency:   models.Frequency(c.Frequency),
		TargetDays:  targetDays,
		CreatedAt:   time.Now(),
		Active:      true,
	}

	if result := validation.ValidateHabit(habit); !result.OK() {
		return result.Err()
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", c.Name, FormatFrequency(habit))
	return nil
}

type HabitEditCmd struct {
	Name        string `arg:"" help:"Habit name."`
	NewName     string `help:"New habit name." default:""`
	Description string `help:"New description." default:""`
	Color       string `help:"New color tag." default:""`
	Category    string `help:"New category label." default:""`
	Frequency   string `help:"New frequency policy." enum:",daily,weekly,monthly" default:""`
	Days        string `help:"New target weekdays for weekly habits." default:""`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.NewName != "" {
		habit.Name = c.NewName
	}
	if c.Description != "" {
		habit.Description = c.Description
	}
	if c.Color != "" {
		habit.Color = c.Color
	}
	if c.Category != "" {
		habit.Category = c.Category
	}
	if c.Frequency != "" {
		habit.Frequency = models.Frequency(c.Frequency)
		if habit.Frequency != models.FrequencyWeekly {
			habit.TargetDays = nil
		}
	}
	if c.Days != "" {
		targetDays, err := ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		habit.TargetDays = targetDays
	}

	if result := validation.ValidateHabit(habit); !result.OK() {
		return result.Err()
	}

	// UpdateHabit preserves identity and creation timestamp.
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.All)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if !habit.Active {
			status = " [ARCHIVED]"
		}
		line := fmt.Sprintf("%s%s — %s", habit.Name, status, FormatFrequency(habit))
		if habit.Category != "" {
			line += fmt.Sprintf(" (%s)", habit.Category)
		}
		fmt.Println(line)
	}
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name to archive."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if err := ctx.Store.SetHabitActive(habit.ID, false); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Name string `arg:"" help:"Habit name to reactivate."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.Name == c.Name {
			if err := ctx.Store.SetHabitActive(habit.ID, true); err != nil {
				return err
			}
			fmt.Printf("Reactivated habit: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("habit %q not found", c.Name)
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and all of its entries.\n", c.Name)
	return nil
}
