package stats

import (
	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
)

// DueOn reports whether the habit is due on the given day. The predicate
// takes an arbitrary reference date so the same rule serves both the today
// dashboard and calendar rendering of past or future dates.
func DueOn(habit models.Habit, day dates.Day) bool {
	if !habit.Active {
		return false
	}
	switch habit.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		for _, wd := range habit.TargetDays {
			if wd == day.Weekday() {
				return true
			}
		}
		return false
	case models.FrequencyMonthly:
		return day.DayOfMonth() == 1
	default:
		return false
	}
}

// SelectDue filters habits down to those due on the given day, preserving
// input order.
func SelectDue(habits []models.Habit, day dates.Day) []models.Habit {
	var due []models.Habit
	for _, h := range habits {
		if DueOn(h, day) {
			due = append(due, h)
		}
	}
	return due
}
