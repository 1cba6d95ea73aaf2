package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed analytics event log. It records exercise
// attempts and generation requests for offline inspection; learner state
// itself lives in memory and is never persisted here.
type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS attempt_events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	user_id       INTEGER NOT NULL,
	exercise_id   TEXT NOT NULL,
	kind          TEXT NOT NULL,
	level         TEXT NOT NULL,
	correct       INTEGER NOT NULL,
	generated     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS llm_request_events (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	provider       TEXT NOT NULL,
	model          TEXT NOT NULL,
	purpose        TEXT NOT NULL,
	input_tokens   INTEGER NOT NULL,
	output_tokens  INTEGER NOT NULL,
	latency_ms     INTEGER NOT NULL,
	success        INTEGER NOT NULL,
	error_message  TEXT NOT NULL DEFAULT '',
	request_body   TEXT NOT NULL DEFAULT '',
	response_body  TEXT NOT NULL DEFAULT ''
);
`

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Events returns an EventRepo backed by this store.
func (s *Store) Events() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for single-writer append workloads.
func applyPragmas(db *sqlx.DB) error {
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
// 1. ENGTUTOR_DB environment variable
// 2. $XDG_DATA_HOME/engtutor/engtutor.db
// 3. ~/.local/share/engtutor/engtutor.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ENGTUTOR_DB"); p != "" {
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

	p := filepath.Join(dataHome, "engtutor", "engtutor.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
