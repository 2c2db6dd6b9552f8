package postgres

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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		habit.ID, habit.Name, habit.Description, habit.Color, habit.Category,
		string(habit.Frequency), storage.MarshalWeekdays(habit.TargetDays),
		habit.CreatedAt, habit.Active)
	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = $1`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE name = $1`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(includeInactive bool) ([]models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits`
	if !includeInactive {
		query += ` WHERE active`
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

func (s *Store) UpdateHabit(habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits SET
			name = $1, description = $2, color = $3, category = $4,
			frequency = $5, target_days = $6, active = $7
		WHERE id = $8`,
		habit.Name, habit.Description, habit.Color, habit.Category,
		string(habit.Frequency), storage.MarshalWeekdays(habit.TargetDays),
		habit.Active, habit.ID)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found")
}

func (s *Store) SetHabitActive(id string, active bool) error {
	result, err := s.db.Exec(`UPDATE habits SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found")
}

func (s *Store) DeleteHabit(id string) error {
	// habit_entries cascades via its foreign key.
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var frequency, targetDays string
	var createdAt time.Time

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
	h.CreatedAt = createdAt

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
