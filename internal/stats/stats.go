// Package stats derives habit statistics (streaks, completion rate,
// trailing completion histories) from a habit's configuration and its set
// of completion entries. All computation is pure: no I/O, no mutation of
// inputs, and total over malformed data (unparseable dates are skipped,
// duplicates are de-duplicated, and impossible configurations degrade to
// zero values rather than failing).
package stats

import (
	"math"
	"sort"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
)

// Compute returns the full statistics for one habit given its entry list,
// evaluated against the given reference date.
func Compute(habit models.Habit, entries []models.HabitEntry, today dates.Day) models.HabitStats {
	completed := make([]models.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if e.Completed {
			completed = append(completed, e)
		}
	}

	days := completedDays(completed)

	s := models.HabitStats{
		HabitID:          habit.ID,
		CurrentStreak:    currentStreak(days, habit, today),
		LongestStreak:    longestStreak(days),
		TotalCompletions: len(completed),
		WeeklyStats:      WeeklyTotals(completed, today),
		MonthlyStats:     MonthlyTotals(completed, today),
	}

	if eligible := EligibleDays(habit, today); eligible > 0 {
		s.CompletionRate = int(math.Round(float64(len(completed)) / float64(eligible) * 100))
	}

	return s
}

// completedDays returns the distinct calendar days with a completed entry,
// sorted ascending. Entries whose dates do not parse are ignored; duplicate
// same-day entries collapse to a single day so they cannot break streak
// adjacency.
func completedDays(completed []models.HabitEntry) []dates.Day {
	seen := make(map[dates.Day]bool, len(completed))
	for _, e := range completed {
		d, err := dates.Parse(e.Date)
		if err != nil {
			continue
		}
		seen[d] = true
	}

	days := make([]dates.Day, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// currentStreak walks backward from today for as long as each day has a
// completed entry. The walk is bounded by the habit's age so malformed
// data (entries predating creation, a creation date in the future) cannot
// extend or unbound it.
func currentStreak(days []dates.Day, habit models.Habit, today dates.Day) int {
	set := make(map[dates.Day]bool, len(days))
	for _, d := range days {
		set[d] = true
	}

	bound := daysInclusive(dates.FromTime(habit.CreatedAt), today)
	streak := 0
	for d := today; streak < bound && set[d]; d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// longestStreak finds the longest run of exactly-adjacent days in an
// ascending list of distinct days.
func longestStreak(days []dates.Day) int {
	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && d.Sub(days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
