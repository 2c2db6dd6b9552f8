package stats

import (
	"testing"
	"time"

	"github.com/jmallicoat/tally/internal/models"
)

func TestDueOn_Daily(t *testing.T) {
	habit := habitWith(models.FrequencyDaily, "2024-01-01")
	if !DueOn(habit, mustParse(t, "2024-01-03")) {
		t.Error("Daily habits should be due every day")
	}
}

func TestDueOn_WeeklyMatchesTargetWeekday(t *testing.T) {
	habit := habitWith(models.FrequencyWeekly, "2024-01-01", time.Monday, time.Friday)

	if !DueOn(habit, mustParse(t, "2024-01-01")) { // Monday
		t.Error("Weekly habit should be due on a target weekday")
	}
	if DueOn(habit, mustParse(t, "2024-01-02")) { // Tuesday
		t.Error("Weekly habit should not be due off its target weekdays")
	}
}

func TestDueOn_MonthlyFirstOfMonth(t *testing.T) {
	habit := habitWith(models.FrequencyMonthly, "2024-01-01")

	if !DueOn(habit, mustParse(t, "2024-02-01")) {
		t.Error("Monthly habit should be due on the first of the month")
	}
	if DueOn(habit, mustParse(t, "2024-02-15")) {
		t.Error("Monthly habit should not be due mid-month")
	}
}

func TestDueOn_InactiveNeverDue(t *testing.T) {
	habit := habitWith(models.FrequencyDaily, "2024-01-01")
	habit.Active = false
	if DueOn(habit, mustParse(t, "2024-01-03")) {
		t.Error("Archived habits are never due")
	}
}

func TestSelectDue_PreservesOrder(t *testing.T) {
	day := mustParse(t, "2024-01-01") // Monday
	habits := []models.Habit{
		{ID: "a", Frequency: models.FrequencyDaily, Active: true},
		{ID: "b", Frequency: models.FrequencyWeekly, TargetDays: []time.Weekday{time.Sunday}, Active: true},
		{ID: "c", Frequency: models.FrequencyWeekly, TargetDays: []time.Weekday{time.Monday}, Active: true},
	}

	due := SelectDue(habits, day)

	if len(due) != 2 {
		t.Fatalf("Expected 2 due habits, got %d", len(due))
	}
	if due[0].ID != "a" || due[1].ID != "c" {
		t.Errorf("Expected order [a c], got [%s %s]", due[0].ID, due[1].ID)
	}
}
