// Package store persists the client's only durable state, the bearer
// credential, in a SQLite database under the user's data directory, so a
// session survives a process restart.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/ports"
)

const dbFile = "booking-client.db"

var _ ports.CredentialStore = (*SQLite)(nil)

// SQLite is the CredentialStore backed by a single-row credential table.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open creates dataDir if needed and opens (or initializes) the database.
func Open(dataDir string, log zerolog.Logger) (*SQLite, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataDir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// Single-row table: at most one credential is active per client instance.
	const schema = `
	CREATE TABLE IF NOT EXISTS credential (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		token    TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return &SQLite{db: db, log: log.With().Str("component", "store").Logger()}, nil
}

// Load returns the stored token, or "" when none is stored.
func (s *SQLite) Load() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT token FROM credential WHERE id = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: load credential: %w", err)
	}
	return token, nil
}

// Save stores token, replacing any previous credential.
func (s *SQLite) Save(token string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO credential (id, token, saved_at) VALUES (1, ?, ?)`,
		token, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store: save credential: %w", err)
	}
	return nil
}

// Clear removes the stored credential. Clearing an empty store succeeds.
func (s *SQLite) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM credential WHERE id = 1`); err != nil {
		return fmt.Errorf("store: clear credential: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
