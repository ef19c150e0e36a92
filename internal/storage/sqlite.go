// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/sim"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is a single persisted run.
type RunEntry struct {
	ID                int64
	Seed              int64
	Score             int
	Level             int
	Apples            int
	Fruits            int
	PortalsEntered    int
	PassagesCompleted int
	MaxLength         int
	TopSpeed          float64
	DurationMS        int64
	LivesUsed         int
	CreatedAt         time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			apples INTEGER NOT NULL DEFAULT 0,
			fruits INTEGER NOT NULL DEFAULT 0,
			portals_entered INTEGER NOT NULL DEFAULT 0,
			passages_completed INTEGER NOT NULL DEFAULT 0,
			max_length INTEGER NOT NULL DEFAULT 0,
			top_speed REAL NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			lives_used INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// RecordRun persists a finished round. Implements sim.Recorder so the
// simulation can be wired directly to the store.
func (s *Store) RecordRun(r sim.RunStats) error {
	_, err := s.SaveRun(r)
	return err
}

// SaveRun inserts a finished run and returns the ID of the new record.
func (s *Store) SaveRun(r sim.RunStats) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (seed, score, level, apples, fruits, portals_entered, passages_completed,
		  max_length, top_speed, duration_ms, lives_used)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Score, r.Level, r.Apples, r.Fruits, r.PortalsEntered,
		r.PassagesCompleted, r.MaxLength, r.TopSpeed, r.DurationMS, r.LivesUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, score, level, apples, fruits, portals_entered,
		        passages_completed, max_length, top_speed, duration_ms,
		        lives_used, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, score, level, apples, fruits, portals_entered,
		        passages_completed, max_length, top_speed, duration_ms,
		        lives_used, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := rows.Scan(
		&e.ID, &e.Seed, &e.Score, &e.Level, &e.Apples, &e.Fruits,
		&e.PortalsEntered, &e.PassagesCompleted, &e.MaxLength, &e.TopSpeed,
		&e.DurationMS, &e.LivesUsed, &createdAt,
	); err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles both time.Time and string datetime columns, which
// the driver returns depending on how the value was written.
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

// HighScore returns the best score recorded. Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes every recorded run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// CareerStats aggregates all recorded runs.
type CareerStats struct {
	Runs              int
	HighScore         int
	AvgScore          float64
	TotalApples       int64
	TotalPlayMS       int64
	MaxLevel          int
	BestLength        int
	TopSpeed          float64
	PortalsEntered    int64
	PassagesCompleted int64
	LastPlayed        time.Time
}

// GetCareerStats retrieves aggregated statistics across every run.
func (s *Store) GetCareerStats() (*CareerStats, error) {
	stats := &CareerStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(SUM(apples), 0),
		        COALESCE(SUM(duration_ms), 0),
		        COALESCE(MAX(level), 0),
		        COALESCE(MAX(max_length), 0),
		        COALESCE(MAX(top_speed), 0),
		        COALESCE(SUM(portals_entered), 0),
		        COALESCE(SUM(passages_completed), 0)
		 FROM runs`,
	).Scan(
		&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalApples,
		&stats.TotalPlayMS, &stats.MaxLevel, &stats.BestLength,
		&stats.TopSpeed, &stats.PortalsEntered, &stats.PassagesCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get career stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Ensure Store implements sim.Recorder.
var _ sim.Recorder = (*Store)(nil)
