package models

import "time"

// Frequency determines which calendar days a habit is due.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is one of the known frequency policies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Habit represents a recurring practice to track.
// TargetDays is only meaningful when Frequency is weekly and is ignored
// for daily and monthly habits.
type Habit struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Color       string         `json:"color,omitempty"`
	Category    string         `json:"category,omitempty"`
	Frequency   Frequency      `json:"frequency"`
	TargetDays  []time.Weekday `json:"target_days,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	Active      bool           `json:"active"`
}

// HabitEntry represents a single day's record of a habit.
// Date is the canonical YYYY-MM-DD form with no time-of-day or timezone.
type HabitEntry struct {
	ID          string     `json:"id"`
	HabitID     string     `json:"habit_id"`
	Date        string     `json:"date"`
	Completed   bool       `json:"completed"`
	Notes       string     `json:"notes,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PeriodCount is one bucket of a trailing completion history.
type PeriodCount struct {
	Label       string `json:"label"`
	Completions int    `json:"completions"`
}

// HabitStats holds statistics derived from a habit's entry set.
// It is recomputed on demand and never persisted.
type HabitStats struct {
	HabitID          string        `json:"habit_id"`
	CurrentStreak    int           `json:"current_streak"`
	LongestStreak    int           `json:"longest_streak"`
	TotalCompletions int           `json:"total_completions"`
	CompletionRate   int           `json:"completion_rate"` // percentage, rounded
	WeeklyStats      []PeriodCount `json:"weekly_stats"`
	MonthlyStats     []PeriodCount `json:"monthly_stats"`
}
