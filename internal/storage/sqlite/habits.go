package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/storage"
)

const habitColumns = "id, name, description, color, category, frequency, target_days, created_at, active"

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, description, color, category, frequency, target_days, created_at, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, habit.Color, habit.Category,
		string(habit.Frequency), storage.MarshalWeekdays(habit.TargetDays),
		habit.CreatedAt.Format(time.RFC3339), habit.Active)
	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE name = ?`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(includeInactive bool) ([]models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits`
	if !includeInactive {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// UpdateHabit overwrites the habit's fields. Identity and creation
// timestamp are preserved regardless of what the caller passes.
func (s *Store) UpdateHabit(habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits SET
			name = ?, description = ?, color = ?, category = ?,
			frequency = ?, target_days = ?, active = ?
		WHERE id = ?`,
		habit.Name, habit.Description, habit.Color, habit.Category,
		string(habit.Frequency), storage.MarshalWeekdays(habit.TargetDays),
		habit.Active, habit.ID)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found")
}

func (s *Store) SetHabitActive(id string, active bool) error {
	result, err := s.db.Exec(`UPDATE habits SET active = ? WHERE id = ?`, active, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found")
}

func (s *Store) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_entries WHERE habit_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if err := requireRow(result, "habit not found"); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var frequency, targetDays, createdAt string

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Color, &h.Category,
		&frequency, &targetDays, &createdAt, &h.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Habit{}, err
	}

	h.Frequency = models.Frequency(frequency)
	h.TargetDays = storage.UnmarshalWeekdays(targetDays)
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}

	return h, nil
}

func requireRow(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", msg, storage.ErrNotFound)
	}
	return nil
}
