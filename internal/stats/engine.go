package stats

import (
	"time"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/logger"
	"github.com/jmallicoat/tally/internal/models"
)

// EntrySource is the slice of the storage provider the engine reads from.
type EntrySource interface {
	GetEntriesForHabit(habitID string) ([]models.HabitEntry, error)
}

// Engine computes habit statistics against a storage provider. A storage
// fault degrades to an empty entry set rather than propagating, so callers
// always receive well-defined stats.
type Engine struct {
	entries EntrySource
	now     func() dates.Day
}

// NewEngine returns an Engine reading entries from src and evaluating
// "today" in the system's local timezone.
func NewEngine(src EntrySource) *Engine {
	return &Engine{
		entries: src,
		now:     func() dates.Day { return dates.Today(time.Local) },
	}
}

// WithClock overrides the engine's notion of today. Used in tests.
func (e *Engine) WithClock(now func() dates.Day) *Engine {
	e.now = now
	return e
}

// ComputeStats returns the statistics for one habit.
func (e *Engine) ComputeStats(habit models.Habit) models.HabitStats {
	entries, err := e.entries.GetEntriesForHabit(habit.ID)
	if err != nil {
		logger.Warn("Failed to load habit entries, computing stats over empty set", "habit", habit.ID, "error", err)
		entries = nil
	}
	return Compute(habit, entries, e.now())
}

// SelectDueToday filters habits down to those due on the engine's current day.
func (e *Engine) SelectDueToday(habits []models.Habit) []models.Habit {
	return SelectDue(habits, e.now())
}
