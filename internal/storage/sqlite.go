// Package storage provides SQLite-based persistence for play session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished run of the game loop.
type Session struct {
	ID        int64
	Frontend  string  // "terminal", "window", "ssh" or "bench"
	User      string  // SSH user or local login
	Frames    int64   // Loop iterations completed
	PeakFPS   int     // Highest latched FPS sample
	Seconds   float64 // Wall time covered by the clock
	CreatedAt time.Time
}

// AverageFPS returns frames per second over the whole session.
func (s Session) AverageFPS() float64 {
	if s.Seconds <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Seconds
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
			frontend TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL DEFAULT 0,
			peak_fps INTEGER NOT NULL DEFAULT 0,
			seconds REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_frontend ON sessions(frontend);
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
		"INSERT INTO sessions (frontend, user, frames, peak_fps, seconds) VALUES (?, ?, ?, ?, ?)",
		sess.Frontend, sess.User, sess.Frames, sess.PeakFPS, sess.Seconds,
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

// RecentSessions retrieves the latest sessions, newest first.
// An empty frontend matches every frontend.
func (s *Store) RecentSessions(frontend string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, user, frames, peak_fps, seconds, created_at
		 FROM sessions
		 WHERE ? = '' OR frontend = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		frontend, frontend, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.Frontend, &sess.User, &sess.Frames, &sess.PeakFPS, &sess.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// BestPeakFPS returns the highest peak FPS recorded for a frontend.
// Returns 0 if no sessions exist.
func (s *Store) BestPeakFPS(frontend string) (int, error) {
	var peak sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(peak_fps) FROM sessions WHERE frontend = ?",
		frontend,
	).Scan(&peak)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query peak fps: %w", err)
	}

	if !peak.Valid {
		return 0, nil
	}

	return int(peak.Int64), nil
}

// ClearSessions deletes all sessions for a frontend, or every session when
// frontend is empty.
func (s *Store) ClearSessions(frontend string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR frontend = ?", frontend, frontend)
	if err != nil {
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
