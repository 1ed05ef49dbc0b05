// Package storage provides SQLite-based persistence for run scores and
// per-level results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single run score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// LevelResult is the outcome of one finished level.
type LevelResult struct {
	ID        int64
	GameID    string
	LevelID   string
	Score     int
	Won       bool
	MovesUsed int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			moves_used INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_top ON level_results(level_id, score DESC);
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

// parseTimestamp converts a scanned DATETIME column. The driver returns
// either time.Time or the SQLite text form depending on how the row was written.
func parseTimestamp(v any) time.Time {
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

// SaveScore records a finished run for the given game mode.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N run scores for the given game mode.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest run score for the given game mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all run scores and level results for the given game mode.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM level_results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear level results: %w", err)
	}
	return tx.Commit()
}

// SaveLevelResult records the outcome of one level.
// Returns the ID of the inserted record.
func (s *Store) SaveLevelResult(r LevelResult) (int64, error) {
	if r.LevelID == "" {
		return 0, errors.New("storage: level result without level id")
	}

	result, err := s.db.Exec(
		`INSERT INTO level_results (game_id, level_id, score, won, moves_used)
		 VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.LevelID, r.Score, r.Won, r.MovesUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopLevelResults retrieves the best N results for a level across all modes.
func (s *Store) TopLevelResults(levelID string, limit int) ([]LevelResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, score, won, moves_used, created_at
		 FROM level_results
		 WHERE level_id = ?
		 ORDER BY score DESC, moves_used ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.LevelID, &r.Score, &r.Won, &r.MovesUsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestLevelScores returns the best recorded score per level ID.
// Levels that were never finished are absent from the map.
func (s *Store) BestLevelScores() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT level_id, MAX(score) FROM level_results GROUP BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best level scores: %w", err)
	}
	defer rows.Close()

	best := make(map[string]int)
	for rows.Next() {
		var id string
		var score int
		if err := rows.Scan(&id, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[id] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return best, nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Plays      int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of plays that were won.
func (st LevelStats) WinRate() float64 {
	if st.Plays == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Plays)
}

// GetLevelStats retrieves aggregated statistics for a level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), MAX(created_at)
		 FROM level_results WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Plays, &stats.Wins, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}
