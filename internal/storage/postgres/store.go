// Package postgres implements the storage provider on PostgreSQL for
// users who keep their habit data on a shared host. Credentials are never
// embedded in connection strings; they come from the OS keyring, the
// TALLY_DB_CONNECTION environment variable, or a .pgpass file.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	pq "github.com/lib/pq"

	"github.com/jmallicoat/tally/internal/constants"
	"github.com/jmallicoat/tally/internal/keyring"
	"github.com/jmallicoat/tally/internal/logger"
)

// EnvConnection is the environment variable consulted for a full
// connection string before falling back to the one given on the CLI.
const EnvConnection = "TALLY_DB_CONNECTION"

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	s := &Store{connStr: connStr}
	s.ensureSearchPath()
	return s
}

func (s *Store) ensureSearchPath() {
	if strings.HasPrefix(s.connStr, "postgres://") || strings.HasPrefix(s.connStr, "postgresql://") {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}

	// Assume DSN format - only append if search_path is not already present
	if !hasDSNParam(s.connStr, "search_path") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

// hasDSNParam reports whether a DSN-style connection string contains the
// given parameter key (case-insensitive).
func hasDSNParam(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], key) {
			return true
		}
	}
	return false
}

// ValidateConnString checks that a connection string parses as a
// PostgreSQL URI or DSN and carries no embedded password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return ErrEmbeddedCredentials
			}
		}
		return nil
	}

	if hasDSNParam(connStr, "password") {
		return ErrEmbeddedCredentials
	}
	return nil
}

// resolveConnStr prefers a connection string from the OS keyring, then the
// environment, then the one given at construction.
func (s *Store) resolveConnStr() string {
	if stored, err := keyring.GetConnectionString(); err == nil && stored != "" {
		return stored
	}
	if env := os.Getenv(EnvConnection); env != "" {
		return env
	}
	return s.connStr
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.resolveConnStr())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
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
		CREATE SCHEMA IF NOT EXISTS ` + constants.AppName + `;

		CREATE TABLE IF NOT EXISTS habits (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			color       TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT '',
			frequency   TEXT NOT NULL,
			target_days TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			active      BOOLEAN NOT NULL DEFAULT TRUE
		);

		CREATE TABLE IF NOT EXISTS habit_entries (
			id           TEXT PRIMARY KEY,
			habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
			day          TEXT NOT NULL,
			completed    BOOLEAN NOT NULL DEFAULT FALSE,
			notes        TEXT NOT NULL DEFAULT '',
			completed_at TIMESTAMPTZ,
			created_at   TIMESTAMPTZ NOT NULL,
			UNIQUE(habit_id, day)
		);

		CREATE INDEX IF NOT EXISTS idx_habit_entries_day ON habit_entries(day);
	`)
	return err
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}
