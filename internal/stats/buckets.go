package stats

import (
	"time"

	"github.com/jmallicoat/tally/internal/constants"
	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
)

// WeeklyTotals buckets completed entries into the trailing 12 seven-day
// windows, each window starting at today minus 7*i days. Buckets are
// returned oldest-first and labeled with the month/day of the window start.
func WeeklyTotals(entries []models.HabitEntry, today dates.Day) []models.PeriodCount {
	buckets := make([]models.PeriodCount, constants.TrailingPeriods)
	for i := 0; i < constants.TrailingPeriods; i++ {
		start := today.AddDays(-7 * i)
		end := start.AddDays(6)

		n := 0
		for _, e := range entries {
			if !e.Completed {
				continue
			}
			d, err := dates.Parse(e.Date)
			if err != nil {
				continue
			}
			if !d.Before(start) && !d.After(end) {
				n++
			}
		}

		// Iteration runs newest to oldest; fill from the back so the
		// result reads oldest to newest.
		buckets[constants.TrailingPeriods-1-i] = models.PeriodCount{
			Label:       start.Format("1/2"),
			Completions: n,
		}
	}
	return buckets
}

// MonthlyTotals buckets completed entries into the trailing 12 calendar
// months ending with the current month, oldest-first, labeled "Jan 2006".
func MonthlyTotals(entries []models.HabitEntry, today dates.Day) []models.PeriodCount {
	buckets := make([]models.PeriodCount, constants.TrailingPeriods)
	for i := 0; i < constants.TrailingPeriods; i++ {
		idx := today.MonthIndex() - i
		year, month := idx/12, time.Month(idx%12+1)

		n := 0
		for _, e := range entries {
			if !e.Completed {
				continue
			}
			d, err := dates.Parse(e.Date)
			if err != nil {
				continue
			}
			if d.MonthIndex() == idx {
				n++
			}
		}

		buckets[constants.TrailingPeriods-1-i] = models.PeriodCount{
			Label:       time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			Completions: n,
		}
	}
	return buckets
}
