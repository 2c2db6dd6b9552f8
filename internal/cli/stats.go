package cli

import (
	"fmt"
	"strings"

	"github.com/jmallicoat/tally/internal/models"
)

type StatsCmd struct {
	Habit   string `arg:"" optional:"" help:"Show detailed stats for one habit."`
	Monthly bool   `help:"Show the trailing 12-month history instead of 12-week."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Habit != "" {
		habit, err := ctx.Store.GetHabitByName(c.Habit)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		c.printDetail(ctx, habit)
		return nil
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("%-24s %8s %8s %12s %6s\n", "Habit", "Streak", "Longest", "Completions", "Rate")
	fmt.Println(strings.Repeat("-", 62))

	rateSum := 0
	for _, habit := range habits {
		s := ctx.Engine.ComputeStats(habit)
		rateSum += s.CompletionRate
		fmt.Printf("%-24s %8d %8d %12d %5d%%\n",
			truncate(habit.Name, 24), s.CurrentStreak, s.LongestStreak, s.TotalCompletions, s.CompletionRate)
	}

	due := ctx.Engine.SelectDueToday(habits)
	fmt.Printf("\n%d habits, %d due today, average completion rate %d%%\n",
		len(habits), len(due), rateSum/len(habits))
	return nil
}

func (c *StatsCmd) printDetail(ctx *Context, habit models.Habit) {
	s := ctx.Engine.ComputeStats(habit)

	fmt.Printf("%s (%s)\n", habit.Name, FormatFrequency(habit))
	if habit.Description != "" {
		fmt.Println(habit.Description)
	}
	fmt.Println()
	fmt.Printf("Current streak:    %d days\n", s.CurrentStreak)
	fmt.Printf("Longest streak:    %d days\n", s.LongestStreak)
	fmt.Printf("Total completions: %d\n", s.TotalCompletions)
	fmt.Printf("Completion rate:   %d%%\n", s.CompletionRate)
	fmt.Println()

	buckets := s.WeeklyStats
	title := "Last 12 weeks:"
	if c.Monthly {
		buckets = s.MonthlyStats
		title = "Last 12 months:"
	}
	fmt.Println(title)
	printBars(buckets)
}

// printBars renders one horizontal bar per bucket, scaled to the busiest
// period.
func printBars(buckets []models.PeriodCount) {
	max := 0
	for _, b := range buckets {
		if b.Completions > max {
			max = b.Completions
		}
	}

	const barWidth = 30
	for _, b := range buckets {
		width := 0
		if max > 0 {
			width = b.Completions * barWidth / max
		}
		fmt.Printf("%9s %s %d\n", b.Label, strings.Repeat("█", width), b.Completions)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
