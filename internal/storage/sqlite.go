// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalPlayer is recorded for solves made at the local terminal.
const LocalPlayer = "local"

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// SolveRecord is one finished puzzle.
type SolveRecord struct {
	ID        int64
	LevelID   string // Level ID, or "custom" for config-driven deals
	Player    string // SSH user or LocalPlayer
	Seed      int64
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats aggregates the solves of one level.
type LevelStats struct {
	LevelID    string
	Solves     int
	BestMoves  int
	AvgMoves   float64
	BestTime   time.Duration
	LastSolved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			seed INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level_id ON solves(level_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(level_id, moves, duration_ms);
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

// SaveSolve records a finished puzzle and returns the new record ID.
func (s *Store) SaveSolve(rec SolveRecord) (int64, error) {
	if rec.LevelID == "" {
		return 0, errors.New("storage: solve has no level id")
	}
	if rec.Player == "" {
		rec.Player = LocalPlayer
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (level_id, player, seed, moves, duration_ms) VALUES (?, ?, ?, ?, ?)",
		rec.LevelID, rec.Player, rec.Seed, rec.Moves, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const solveColumns = "id, level_id, player, seed, moves, duration_ms, created_at"

// BestSolves returns the best solves of a level: fewest moves first, then
// fastest.
func (s *Store) BestSolves(levelID string, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySolves(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE level_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
}

// RecentSolves returns the most recent solves across all levels.
func (s *Store) RecentSolves(limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySolves(
		`SELECT `+solveColumns+`
		 FROM solves
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) querySolves(query string, args ...any) ([]SolveRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		var r SolveRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Player, &r.Seed, &r.Moves, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// LevelStats aggregates the solves of one level. A level without solves
// yields zero stats, not an error.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var bestMS int64
	var lastSolved any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0),
		        COALESCE(MIN(duration_ms), 0), MAX(created_at)
		 FROM solves WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Solves, &stats.BestMoves, &stats.AvgMoves, &bestMS, &lastSolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	stats.BestTime = time.Duration(bestMS) * time.Millisecond
	stats.LastSolved = parseTime(lastSolved)
	return stats, nil
}

// AllLevelStats returns stats for every level with at least one solve.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var bestMS int64
		var lastSolved any
		if err := rows.Scan(&st.LevelID, &st.Solves, &st.BestMoves, &st.AvgMoves, &bestMS, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMS) * time.Millisecond
		st.LastSolved = parseTime(lastSolved)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearSolves deletes all solves for the given level.
func (s *Store) ClearSolves(levelID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime handles both driver time values and SQLite datetime strings.
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
