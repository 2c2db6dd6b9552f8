package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/storage"
)

const entryColumns = "id, habit_id, day, completed, notes, completed_at, created_at"

func (s *Store) GetEntry(habitID, date string) (models.HabitEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = $1 AND day = $2`, habitID, date)
	return scanEntry(row)
}

func (s *Store) GetEntriesForHabit(habitID string) ([]models.HabitEntry, error) {
	return s.queryEntries(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = $1 ORDER BY day`, habitID)
}

func (s *Store) GetEntriesForDay(date string) ([]models.HabitEntry, error) {
	return s.queryEntries(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE day = $1 ORDER BY created_at`, date)
}

func (s *Store) GetEntriesForHabitRange(habitID, startDate, endDate string) ([]models.HabitEntry, error) {
	return s.queryEntries(`
		SELECT `+entryColumns+` FROM habit_entries
		WHERE habit_id = $1 AND day >= $2 AND day <= $3 ORDER BY day`,
		habitID, startDate, endDate)
}

func (s *Store) GetAllEntries() ([]models.HabitEntry, error) {
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM habit_entries ORDER BY day`)
}

func (s *Store) UpdateEntry(entry models.HabitEntry) error {
	var completedAt sql.NullTime
	if entry.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *entry.CompletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habit_entries (id, habit_id, day, completed, notes, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			completed = EXCLUDED.completed,
			notes = EXCLUDED.notes,
			completed_at = EXCLUDED.completed_at`,
		entry.ID, entry.HabitID, entry.Date, entry.Completed, entry.Notes,
		completedAt, entry.CreatedAt)
	return err
}

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
	var completedAt sql.NullTime
	var createdAt time.Time

	err := row.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed, &e.Notes, &completedAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitEntry{}, storage.ErrNotFound
	}
	if err != nil {
		return models.HabitEntry{}, err
	}

	e.CreatedAt = createdAt
	if completedAt.Valid {
		t := completedAt.Time
		e.CompletedAt = &t
	}

	return e, nil
}
