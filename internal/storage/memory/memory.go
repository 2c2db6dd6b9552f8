// Package memory implements the storage provider on in-process maps.
// It backs tests and carries no persistence.
package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/storage"
)

type Store struct {
	habits  map[string]models.Habit
	entries map[string]models.HabitEntry // keyed by habitID + "|" + date
}

func New() *Store {
	return &Store{
		habits:  make(map[string]models.Habit),
		entries: make(map[string]models.HabitEntry),
	}
}

func (s *Store) Init() error  { return nil }
func (s *Store) Load() error  { return nil }
func (s *Store) Close() error { return nil }

func (s *Store) GetConfigPath() string { return ":memory:" }

func entryKey(habitID, date string) string {
	return habitID + "|" + date
}

func (s *Store) AddHabit(habit models.Habit) error {
	if _, ok := s.habits[habit.ID]; ok {
		return fmt.Errorf("habit %s already exists", habit.ID)
	}
	s.habits[habit.ID] = habit
	return nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	h, ok := s.habits[id]
	if !ok {
		return models.Habit{}, storage.ErrNotFound
	}
	return h, nil
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	for _, h := range s.habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, storage.ErrNotFound
}

func (s *Store) GetAllHabits(includeInactive bool) ([]models.Habit, error) {
	var habits []models.Habit
	for _, h := range s.habits {
		if !includeInactive && !h.Active {
			continue
		}
		habits = append(habits, h)
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	existing, ok := s.habits[habit.ID]
	if !ok {
		return storage.ErrNotFound
	}
	// Identity and creation timestamp are preserved.
	habit.CreatedAt = existing.CreatedAt
	s.habits[habit.ID] = habit
	return nil
}

func (s *Store) SetHabitActive(id string, active bool) error {
	h, ok := s.habits[id]
	if !ok {
		return storage.ErrNotFound
	}
	h.Active = active
	s.habits[id] = h
	return nil
}

func (s *Store) DeleteHabit(id string) error {
	if _, ok := s.habits[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.habits, id)
	for key, e := range s.entries {
		if e.HabitID == id {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *Store) GetEntry(habitID, date string) (models.HabitEntry, error) {
	e, ok := s.entries[entryKey(habitID, date)]
	if !ok {
		return models.HabitEntry{}, storage.ErrNotFound
	}
	return e, nil
}

func (s *Store) GetEntriesForHabit(habitID string) ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	for _, e := range s.entries {
		if e.HabitID == habitID {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	return entries, nil
}

func (s *Store) GetEntriesForDay(date string) ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	for _, e := range s.entries {
		if e.Date == date {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	return entries, nil
}

func (s *Store) GetEntriesForHabitRange(habitID, startDate, endDate string) ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	for _, e := range s.entries {
		if e.HabitID == habitID && e.Date >= startDate && e.Date <= endDate {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	return entries, nil
}

func (s *Store) GetAllEntries() ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, nil
}

func (s *Store) UpdateEntry(entry models.HabitEntry) error {
	s.entries[entryKey(entry.HabitID, entry.Date)] = entry
	return nil
}

func (s *Store) ToggleCompletion(habitID, date string) (models.HabitEntry, error) {
	key := entryKey(habitID, date)
	if e, ok := s.entries[key]; ok {
		e.Completed = !e.Completed
		if e.Completed {
			now := time.Now()
			e.CompletedAt = &now
		} else {
			e.CompletedAt = nil
		}
		s.entries[key] = e
		return e, nil
	}

	now := time.Now()
	e := models.HabitEntry{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Date:        date,
		Completed:   true,
		CompletedAt: &now,
		CreatedAt:   now,
	}
	s.entries[key] = e
	return e, nil
}

func sortEntries(entries []models.HabitEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
