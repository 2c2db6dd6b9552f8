package system

import (
	"fmt"

	"github.com/jmallicoat/tally/internal/cli"
	"github.com/jmallicoat/tally/internal/validation"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	fmt.Println("Running health checks...")
	fmt.Println()

	problems := 0

	fmt.Printf("Storage: %s\n", ctx.Store.GetConfigPath())
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		fmt.Printf("  FAIL: cannot read habits: %v\n", err)
		problems++
	} else {
		fmt.Printf("  OK: %d habits\n", len(habits))
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		fmt.Printf("  FAIL: cannot read entries: %v\n", err)
		problems++
	} else {
		fmt.Printf("  OK: %d entries\n", len(entries))
	}

	// Orphaned entries reference a habit that no longer exists. They are
	// harmless to the stats engine but indicate a cascade that didn't run.
	if err == nil && habits != nil {
		known := make(map[string]bool, len(habits))
		for _, h := range habits {
			known[h.ID] = true
		}
		orphans := 0
		for _, e := range entries {
			if !known[e.HabitID] {
				orphans++
			}
		}
		if orphans > 0 {
			fmt.Printf("  WARN: %d entries reference missing habits\n", orphans)
			problems++
		}
	}

	if habits != nil {
		result := validation.ValidateHabits(habits)
		if result.OK() {
			fmt.Println("  OK: all habit definitions valid")
		} else {
			for _, p := range result.Problems {
				fmt.Printf("  WARN: %s\n", p.Description)
			}
			problems += len(result.Problems)
		}
	}

	fmt.Println()
	if problems == 0 {
		fmt.Println("All checks passed.")
	} else {
		fmt.Printf("%d problems found.\n", problems)
	}
	return nil
}
