package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/storage"
)

const entryColumns = "id, habit_id, day, completed, notes, completed_at, created_at"

func (s *Store) GetEntry(habitID, date string) (models.HabitEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = ? AND day = ?`, habitID, date)
	return scanEntry(row)
}

func (s *Store) GetEntriesForHabit(habitID string) ([]models.HabitEntry, error) {
	return s.queryEntries(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = ? ORDER BY day`, habitID)
}

func (s *Store) GetEntriesForDay(date string) ([]models.HabitEntry, error) {
	return s.queryEntries(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE day = ? ORDER BY created_at`, date)
}

func (s *Store) GetEntriesForHabitRange(habitID, startDate, endDate string) ([]models.HabitEntry, error) {
	return s.queryEntries(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = ? AND day >= ? AND day <= ? ORDER BY day`,
		habitID, startDate, endDate)
}

func (s *Store) GetAllEntries() ([]models.HabitEntry, error) {
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM habit_entries ORDER BY day`)
}

func (s *Store) UpdateEntry(entry models.HabitEntry) error {
	var completedAt sql.NullString
	if entry.CompletedAt != nil {
		completedAt = sql.NullString{String: entry.CompletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habit_entries (id, habit_id, day, completed, notes, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			notes = excluded.notes,
			completed_at = excluded.completed_at`,
		entry.ID, entry.HabitID, entry.Date, entry.Completed, entry.Notes,
		completedAt, entry.CreatedAt.Format(time.RFC3339))
	return err
}

// ToggleCompletion flips the completed flag for (habitID, date). The first
// toggle for a day creates a completed entry; repeat toggles flip it in
// place, so the (habit, day) pair stays unique.
func (s *Store) ToggleCompletion(habitID, date string) (models.HabitEntry, error) {
	entry, err := s.GetEntry(habitID, date)
	if errors.Is(err, storage.ErrNotFound) {
		now := time.Now()
		entry = models.HabitEntry{
			ID:          uuid.New().String(),
			HabitID:     habitID,
			Date:        date,
			Completed:   true,
			CompletedAt: &now,
			CreatedAt:   now,
		}
		if err := s.UpdateEntry(entry); err != nil {
			return models.HabitEntry{}, err
		}
		return entry, nil
	}
	if err != nil {
		return models.HabitEntry{}, err
	}

	entry.Completed = !entry.Completed
	if entry.Completed {
		now := time.Now()
		entry.CompletedAt = &now
	} else {
		entry.CompletedAt = nil
	}
	if err := s.UpdateEntry(entry); err != nil {
		return models.HabitEntry{}, err
	}
	return entry, nil
}

func (s *Store) queryEntries(query string, args ...any) ([]models.HabitEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.HabitEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(row rowScanner) (models.HabitEntry, error) {
	var e models.HabitEntry
	var completedAt sql.NullString
	var createdAt string

	err := row.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed, &e.Notes, &completedAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitEntry{}, storage.ErrNotFound
	}
	if err != nil {
		return models.HabitEntry{}, err
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HabitEntry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
	}
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.HabitEntry{}, fmt.Errorf("failed to parse completed_at for entry %s: %w", e.ID, err)
		}
		e.CompletedAt = &t
	}

	return e, nil
}
