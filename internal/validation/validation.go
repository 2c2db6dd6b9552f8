// Package validation checks habit definitions before they reach storage.
package validation

import (
	"fmt"
	"time"

	"github.com/jmallicoat/tally/internal/models"
)

// ProblemType represents the type of validation problem
type ProblemType string

const (
	ProblemEmptyName          ProblemType = "empty_name"
	ProblemInvalidFrequency   ProblemType = "invalid_frequency"
	ProblemMissingTargetDays  ProblemType = "missing_target_days"
	ProblemUnexpectedTargets  ProblemType = "unexpected_target_days"
	ProblemInvalidWeekday     ProblemType = "invalid_weekday"
	ProblemDuplicateHabitName ProblemType = "duplicate_habit_name"
)

// Problem describes a single validation failure.
type Problem struct {
	Type        ProblemType
	Description string
}

// Result contains all detected problems for one validation pass.
type Result struct {
	Problems []Problem
}

// OK returns true if no problems were detected.
func (r *Result) OK() bool {
	return len(r.Problems) == 0
}

// Err returns the first problem as an error, or nil when the result is clean.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%s", r.Problems[0].Description)
}

// ValidateHabit checks a single habit definition for internal consistency.
func ValidateHabit(h models.Habit) Result {
	var result Result

	if h.Name == "" {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemEmptyName,
			Description: "habit name cannot be empty",
		})
	}

	if !h.Frequency.Valid() {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemInvalidFrequency,
			Description: fmt.Sprintf("invalid frequency %q (expected daily, weekly, or monthly)", h.Frequency),
		})
	}

	switch h.Frequency {
	case models.FrequencyWeekly:
		if len(h.TargetDays) == 0 {
			result.Problems = append(result.Problems, Problem{
				Type:        ProblemMissingTargetDays,
				Description: fmt.Sprintf("weekly habit %q needs at least one target weekday", h.Name),
			})
		}
	default:
		if len(h.TargetDays) > 0 {
			result.Problems = append(result.Problems, Problem{
				Type:        ProblemUnexpectedTargets,
				Description: fmt.Sprintf("target weekdays are only meaningful for weekly habits, not %q", h.Frequency),
			})
		}
	}

	for _, wd := range h.TargetDays {
		if wd < time.Sunday || wd > time.Saturday {
			result.Problems = append(result.Problems, Problem{
				Type:        ProblemInvalidWeekday,
				Description: fmt.Sprintf("invalid weekday %d (expected 0-6)", wd),
			})
		}
	}

	return result
}

// ValidateHabits validates a collection and additionally flags duplicate names.
func ValidateHabits(habits []models.Habit) Result {
	var result Result

	nameCount := make(map[string][]string)
	for _, h := range habits {
		hr := ValidateHabit(h)
		result.Problems = append(result.Problems, hr.Problems...)
		if h.Name != "" {
			nameCount[h.Name] = append(nameCount[h.Name], h.ID)
		}
	}

	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.Problems = append(result.Problems, Problem{
				Type:        ProblemDuplicateHabitName,
				Description: fmt.Sprintf("duplicate habit name %q (%d habits)", name, len(ids)),
			})
		}
	}

	return result
}
