package stats

import (
	"errors"
	"testing"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
)

type fakeEntrySource struct {
	entries []models.HabitEntry
	err     error
}

func (f *fakeEntrySource) GetEntriesForHabit(habitID string) ([]models.HabitEntry, error) {
	return f.entries, f.err
}

func TestEngine_ComputeStats(t *testing.T) {
	habit := dailyHabit("2024-01-01")
	src := &fakeEntrySource{
		entries: completedOn(habit.ID, "2024-01-06", "2024-01-07"),
	}

	engine := NewEngine(src).WithClock(func() dates.Day {
		d, _ := dates.Parse("2024-01-07")
		return d
	})

	s := engine.ComputeStats(habit)
	if s.CurrentStreak != 2 {
		t.Errorf("Expected streak 2, got %d", s.CurrentStreak)
	}
}

func TestEngine_StorageFaultDegradesToEmptySet(t *testing.T) {
	habit := dailyHabit("2024-01-01")
	src := &fakeEntrySource{err: errors.New("disk on fire")}

	engine := NewEngine(src).WithClock(func() dates.Day {
		d, _ := dates.Parse("2024-01-07")
		return d
	})

	s := engine.ComputeStats(habit)
	if s.CurrentStreak != 0 || s.TotalCompletions != 0 || s.CompletionRate != 0 {
		t.Errorf("Expected zeroed stats on storage failure, got %+v", s)
	}
	if len(s.WeeklyStats) != 12 {
		t.Errorf("Stats must stay well-formed on storage failure, got %d weekly buckets", len(s.WeeklyStats))
	}
}

func TestEngine_SelectDueToday(t *testing.T) {
	engine := NewEngine(&fakeEntrySource{}).WithClock(func() dates.Day {
		d, _ := dates.Parse("2024-01-02") // Tuesday
		return d
	})

	habits := []models.Habit{
		{ID: "daily", Frequency: models.FrequencyDaily, Active: true},
		{ID: "monthly", Frequency: models.FrequencyMonthly, Active: true},
	}

	due := engine.SelectDueToday(habits)
	if len(due) != 1 || due[0].ID != "daily" {
		t.Errorf("Expected only the daily habit due on Jan 2, got %d habits", len(due))
	}
}
