// Package sqlite implements the storage provider on a local SQLite
// database. This is the default backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Store struct {
	path string
	db   *sql.DB
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'tally init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema statements are idempotent, so loading an older database
	// brings it up to date.
	return s.createSchema()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS habits (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			color       TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT '',
			frequency   TEXT NOT NULL,
			target_days TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL,
			active      INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS habit_entries (
			id           TEXT PRIMARY KEY,
			habit_id     TEXT NOT NULL,
			day          TEXT NOT NULL,
			completed    INTEGER NOT NULL DEFAULT 0,
			notes        TEXT NOT NULL DEFAULT '',
			completed_at TEXT,
			created_at   TEXT NOT NULL,
			UNIQUE(habit_id, day)
		);

		CREATE INDEX IF NOT EXISTS idx_habit_entries_day ON habit_entries(day);
	`)
	return err
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection. Returns nil before
// Init or Load has been called.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
