package stats

import (
	"time"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
)

// EligibleDays returns the number of days between the habit's creation and
// today (inclusive of both) on which the habit was due, per its frequency
// policy. This is the denominator for the completion rate.
//
// The creation day itself counts as eligible, so a daily habit created
// today has exactly 1 eligible day. A creation date after today yields a
// non-positive count for daily/weekly habits; callers must treat that as
// "no eligible days" (rate 0). Monthly habits are floored at 1.
func EligibleDays(habit models.Habit, today dates.Day) int {
	created := dates.FromTime(habit.CreatedAt)

	switch habit.Frequency {
	case models.FrequencyWeekly:
		if len(habit.TargetDays) == 0 {
			// No target set configured: every day counts, same as daily.
			return daysInclusive(created, today)
		}
		targets := make(map[time.Weekday]bool, len(habit.TargetDays))
		for _, wd := range habit.TargetDays {
			targets[wd] = true
		}
		n := 0
		for d := created; !d.After(today); d = d.AddDays(1) {
			if targets[d.Weekday()] {
				n++
			}
		}
		return n
	case models.FrequencyMonthly:
		// One eligibility unit per calendar month, regardless of which
		// day-of-month is due. At least 1 for habits created this month.
		months := today.MonthIndex() - created.MonthIndex() + 1
		if months < 1 {
			return 1
		}
		return months
	default:
		return daysInclusive(created, today)
	}
}

func daysInclusive(from, to dates.Day) int {
	return to.Sub(from) + 1
}
