package storage

import (
	"errors"
	"net/url"
	"strings"

	"github.com/jmallicoat/tally/internal/models"
)

// ErrNotFound is returned when a requested habit or entry does not exist.
var ErrNotFound = errors.New("not found")

// Provider is the storage port the rest of the application depends on.
// Implementations guarantee at most one entry per (habit, date) pair via
// ToggleCompletion's find-or-create semantics and a uniqueness constraint
// at the storage boundary.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeInactive bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	SetHabitActive(id string, active bool) error
	// DeleteHabit removes the habit and cascades deletion of all its entries.
	DeleteHabit(id string) error

	// Habit Entries
	GetEntry(habitID, date string) (models.HabitEntry, error)
	GetEntriesForHabit(habitID string) ([]models.HabitEntry, error)
	GetEntriesForDay(date string) ([]models.HabitEntry, error)
	GetEntriesForHabitRange(habitID, startDate, endDate string) ([]models.HabitEntry, error)
	GetAllEntries() ([]models.HabitEntry, error)
	UpdateEntry(models.HabitEntry) error
	// ToggleCompletion flips the completed flag for (habitID, date),
	// creating a completed entry if none exists yet.
	ToggleCompletion(habitID, date string) (models.HabitEntry, error)

	// Utils
	GetConfigPath() string
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Connection strings with embedded credentials
// are rejected; credentials belong in the OS keyring, the environment, or
// a .pgpass file.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs.
	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}
