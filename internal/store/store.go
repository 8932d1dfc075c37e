// Package store is the local key-value persistence facility: named records
// holding canonical JSON, backed by a single sqlite table.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);`

// Store wraps the sqlite database holding the records table.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn. It
// applies recommended pragmas and creates the records table.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key. The second result is false when no
// record exists.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get record %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put writes the value under key, replacing any prior record. The write is a
// synchronous round-trip; when Put returns nil the record is durable.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO records (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("put record %q: %w", key, err)
	}
	return nil
}

// Delete removes the record under key. Deleting a missing record is not an
// error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QUIZDECK_DB environment variable
// 2. $XDG_DATA_HOME/quizdeck/quizdeck.db
// 3. ~/.local/share/quizdeck/quizdeck.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZDECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdeck", "quizdeck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
