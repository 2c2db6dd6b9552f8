package stats

import (
	"testing"
	"time"

	"github.com/jmallicoat/tally/internal/models"
)

func habitWith(frequency models.Frequency, created string, targets ...time.Weekday) models.Habit {
	createdAt, _ := time.Parse("2006-01-02", created)
	return models.Habit{
		ID:         "habit-1",
		Name:       "Exercise",
		Frequency:  frequency,
		TargetDays: targets,
		CreatedAt:  createdAt,
		Active:     true,
	}
}

func TestEligibleDays_DailyCountsCreationDay(t *testing.T) {
	habit := habitWith(models.FrequencyDaily, "2024-01-01")
	if got := EligibleDays(habit, mustParse(t, "2024-01-07")); got != 7 {
		t.Errorf("Expected 7 eligible days for a week-old daily habit, got %d", got)
	}
}

func TestEligibleDays_DailyCreatedToday(t *testing.T) {
	habit := habitWith(models.FrequencyDaily, "2024-01-07")
	if got := EligibleDays(habit, mustParse(t, "2024-01-07")); got != 1 {
		t.Errorf("Expected 1 eligible day for a habit created today, got %d", got)
	}
}

func TestEligibleDays_WeeklyCountsTargetWeekdaysOnly(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 a Sunday: one full week containing
	// exactly one Monday, Wednesday, and Friday each.
	habit := habitWith(models.FrequencyWeekly, "2024-01-01",
		time.Monday, time.Wednesday, time.Friday)
	if got := EligibleDays(habit, mustParse(t, "2024-01-07")); got != 3 {
		t.Errorf("Expected 3 eligible days for Mon/Wed/Fri over one week, got %d", got)
	}
}

func TestEligibleDays_WeeklyWithoutTargetsFallsBackToDaily(t *testing.T) {
	habit := habitWith(models.FrequencyWeekly, "2024-01-01")
	if got := EligibleDays(habit, mustParse(t, "2024-01-07")); got != 7 {
		t.Errorf("Expected daily fallback of 7 for weekly habit with no targets, got %d", got)
	}
}

func TestEligibleDays_MonthlyCreatedThisMonth(t *testing.T) {
	habit := habitWith(models.FrequencyMonthly, "2024-01-05")
	if got := EligibleDays(habit, mustParse(t, "2024-01-20")); got != 1 {
		t.Errorf("Expected 1 eligible period for a monthly habit created this month, got %d", got)
	}
}

func TestEligibleDays_MonthlyCountsCalendarMonths(t *testing.T) {
	// Dec, Jan, Feb: 3 calendar months regardless of days elapsed.
	habit := habitWith(models.FrequencyMonthly, "2023-12-28")
	if got := EligibleDays(habit, mustParse(t, "2024-02-02")); got != 3 {
		t.Errorf("Expected 3 eligible periods across Dec/Jan/Feb, got %d", got)
	}
}

func TestEligibleDays_FutureCreation(t *testing.T) {
	habit := habitWith(models.FrequencyDaily, "2024-02-01")
	if got := EligibleDays(habit, mustParse(t, "2024-01-07")); got > 0 {
		t.Errorf("Expected non-positive eligible days for a future creation date, got %d", got)
	}
}
