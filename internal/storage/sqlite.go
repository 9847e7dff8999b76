// Package storage provides SQLite-based persistence for session statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only counters are stored. Shapes themselves are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/clickfield/internal/config"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is the summary of one interactive session.
type Session struct {
	ID        int64
	SessionID string // Unique per run, e.g. a UUID
	User      string // Local username or SSH user
	Spawned   int
	Squares   int
	Rounds    int
	Removed   int
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// Totals aggregates every recorded session.
type Totals struct {
	Sessions int
	Spawned  int
	Squares  int
	Rounds   int
	Removed  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			user TEXT NOT NULL DEFAULT '',
			spawned INTEGER NOT NULL DEFAULT 0,
			squares INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			removed INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, user, spawned, squares, rounds, removed, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.SessionID, sess.User, sess.Spawned, sess.Squares, sess.Rounds,
		sess.Removed, sess.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, user, spawned, squares, rounds, removed,
		        duration_secs, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.User, &e.Spawned, &e.Squares,
			&e.Rounds, &e.Removed, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals returns counters summed over every session.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(spawned), 0),
		        COALESCE(SUM(squares), 0),
		        COALESCE(SUM(rounds), 0),
		        COALESCE(SUM(removed), 0)
		 FROM sessions`,
	).Scan(&t.Sessions, &t.Spawned, &t.Squares, &t.Rounds, &t.Removed)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	return t, nil
}

// ClearSessions deletes every recorded session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
