package validation

import (
	"testing"
	"time"

	"github.com/jmallicoat/tally/internal/models"
)

func hasProblem(r Result, pt ProblemType) bool {
	for _, p := range r.Problems {
		if p.Type == pt {
			return true
		}
	}
	return false
}

func TestValidateHabit_Valid(t *testing.T) {
	cases := []models.Habit{
		{ID: "1", Name: "Read", Frequency: models.FrequencyDaily},
		{ID: "2", Name: "Gym", Frequency: models.FrequencyWeekly,
			TargetDays: []time.Weekday{time.Monday, time.Thursday}},
		{ID: "3", Name: "Budget review", Frequency: models.FrequencyMonthly},
	}
	for _, h := range cases {
		if result := ValidateHabit(h); !result.OK() {
			t.Errorf("Expected habit %q to validate, got problems: %v", h.Name, result.Problems)
		}
	}
}

func TestValidateHabit_EmptyName(t *testing.T) {
	result := ValidateHabit(models.Habit{Frequency: models.FrequencyDaily})
	if !hasProblem(result, ProblemEmptyName) {
		t.Error("Expected an empty_name problem")
	}
}

func TestValidateHabit_InvalidFrequency(t *testing.T) {
	result := ValidateHabit(models.Habit{Name: "Read", Frequency: "fortnightly"})
	if !hasProblem(result, ProblemInvalidFrequency) {
		t.Error("Expected an invalid_frequency problem")
	}
}

func TestValidateHabit_WeeklyNeedsTargetDays(t *testing.T) {
	result := ValidateHabit(models.Habit{Name: "Gym", Frequency: models.FrequencyWeekly})
	if !hasProblem(result, ProblemMissingTargetDays) {
		t.Error("Expected a missing_target_days problem")
	}
}

func TestValidateHabit_TargetDaysOnlyForWeekly(t *testing.T) {
	result := ValidateHabit(models.Habit{
		Name:       "Read",
		Frequency:  models.FrequencyDaily,
		TargetDays: []time.Weekday{time.Monday},
	})
	if !hasProblem(result, ProblemUnexpectedTargets) {
		t.Error("Expected an unexpected_target_days problem")
	}
}

func TestValidateHabit_WeekdayRange(t *testing.T) {
	result := ValidateHabit(models.Habit{
		Name:       "Gym",
		Frequency:  models.FrequencyWeekly,
		TargetDays: []time.Weekday{time.Weekday(9)},
	})
	if !hasProblem(result, ProblemInvalidWeekday) {
		t.Error("Expected an invalid_weekday problem")
	}
}

func TestValidateHabits_DuplicateNames(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Name: "Read", Frequency: models.FrequencyDaily},
		{ID: "2", Name: "Read", Frequency: models.FrequencyDaily},
	}
	result := ValidateHabits(habits)
	if !hasProblem(result, ProblemDuplicateHabitName) {
		t.Error("Expected a duplicate_habit_name problem")
	}
}

func TestResult_Err(t *testing.T) {
	clean := ValidateHabit(models.Habit{Name: "Read", Frequency: models.FrequencyDaily})
	if err := clean.Err(); err != nil {
		t.Errorf("Expected nil error for a clean result, got %v", err)
	}

	dirty := ValidateHabit(models.Habit{Frequency: models.FrequencyDaily})
	if err := dirty.Err(); err == nil {
		t.Error("Expected an error for a dirty result")
	}
}
