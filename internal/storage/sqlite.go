// Package storage provides SQLite-based persistence for finished session
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only the end-of-session summary is stored. A stored result is never loaded
// back into a running session.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is the stored summary of one finished session.
type Result struct {
	ID        int64
	SessionID string
	Player    string
	Likes     int
	Footprint int
	Rating    string
	Blocked   []string // platform keys in blocking order
	Picks     []string // "platform:style" per round
	CreatedAt time.Time
}

// NewResult builds a storable result from a session summary and its history.
func NewResult(sessionID, player string, sum engine.Summary, history []engine.Pick) Result {
	r := Result{
		SessionID: sessionID,
		Player:    player,
		Likes:     sum.Likes,
		Footprint: sum.Footprint,
		Rating:    string(sum.Rating),
		Blocked:   make([]string, 0, len(sum.Blocked)),
		Picks:     make([]string, 0, len(history)),
	}
	for _, p := range sum.Blocked {
		r.Blocked = append(r.Blocked, string(p.Key))
	}
	for _, p := range history {
		r.Picks = append(r.Picks, string(p.Platform)+":"+string(p.Style))
	}
	return r
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
	// SSH sessions share the store; sqlite takes one writer at a time.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			likes INTEGER NOT NULL,
			footprint INTEGER NOT NULL,
			rating TEXT NOT NULL,
			blocked TEXT NOT NULL DEFAULT '',
			picks TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_likes ON results(likes DESC);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a finished session. Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (session_id, player, likes, footprint, rating, blocked, picks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Player, r.Likes, r.Footprint, r.Rating,
		strings.Join(r.Blocked, ","), strings.Join(r.Picks, ","),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, session_id, player, likes, footprint, rating, blocked, picks, created_at`

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// TopResults retrieves the results with the most likes.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results ORDER BY likes DESC, id ASC LIMIT ?`,
		limit,
	)
}

// ResultBySession retrieves a result by its session ID.
// Returns nil, nil when no such result exists.
func (s *Store) ResultBySession(sessionID string) (*Result, error) {
	results, err := s.queryResults(
		`SELECT `+resultColumns+` FROM results WHERE session_id = ?`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ClearResults deletes all stored results.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var blocked, picks string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Player, &r.Likes, &r.Footprint,
			&r.Rating, &blocked, &picks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Blocked = splitList(blocked)
		r.Picks = splitList(picks)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats contains aggregated statistics over all stored results.
type Stats struct {
	Sessions     int
	BestLikes    int
	AvgLikes     float64
	AvgFootprint float64
	Ratings      map[string]int
	LastPlayed   time.Time
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{Ratings: make(map[string]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(likes), 0), COALESCE(AVG(likes), 0), COALESCE(AVG(footprint), 0)
		 FROM results`,
	).Scan(&stats.Sessions, &stats.BestLikes, &stats.AvgLikes, &stats.AvgFootprint)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	rows, err := s.db.Query(`SELECT rating, COUNT(*) FROM results GROUP BY rating`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get rating counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rating string
		var n int
		if err := rows.Scan(&rating, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan rating row: %w", err)
		}
		stats.Ratings[rating] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM results ORDER BY created_at DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
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

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
