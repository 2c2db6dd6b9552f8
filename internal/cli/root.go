package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/stats"
	"github.com/jmallicoat/tally/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *stats.Engine
	Debug  bool
}

// ParseWeekdays parses a comma-separated list of weekdays, accepting both
// names ("mon", "monday") and numbers (0=Sunday, 6=Saturday).
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}
	return weekdays, nil
}

// FormatFrequency formats a habit's frequency policy into a human-readable string
func FormatFrequency(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		if len(h.TargetDays) > 0 {
			var days []string
			for _, wd := range h.TargetDays {
				days = append(days, wd.String()[:3])
			}
			return fmt.Sprintf("weekly on %s", strings.Join(days, ","))
		}
		return "weekly"
	case models.FrequencyMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// ResolveDate returns the canonical form of a user-supplied date, or today
// when the input is empty.
func ResolveDate(s string) (string, error) {
	if s == "" {
		return dates.Today(time.Local).String(), nil
	}
	d, err := dates.Parse(s)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
