// Package storage keeps a local history of finished 2048 games in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only results are stored; a game in progress is never saved.
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

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// GameResult is a finished game to record.
type GameResult struct {
	Board   string // board key, e.g. "2048-4x4"
	Score   int
	MaxTile int
	Moves   int
	Won     bool
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Board     string
	Score     int
	MaxTile   int
	Moves     int
	Won       bool
	CreatedAt time.Time
}

// BoardStats holds aggregated statistics for one board.
type BoardStats struct {
	Board      string
	GamesCount int
	HighScore  int
	BestTile   int
	AvgScore   float64
	Wins       int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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
			board TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_board ON scores(board);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board, score DESC);
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

// SaveGame records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(r GameResult) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board, score, max_tile, moves, won) VALUES (?, ?, ?, ?, ?)",
		r.Board, r.Score, r.MaxTile, r.Moves, r.Won,
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

// SaveScore records a bare score for the given board.
func (s *Store) SaveScore(board string, score int) (int64, error) {
	return s.SaveGame(GameResult{Board: board, Score: score})
}

// TopScores retrieves the top N scores for the given board.
// Results are ordered by score descending.
func (s *Store) TopScores(board string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board, score, max_tile, moves, won, created_at
		 FROM scores
		 WHERE board = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		board, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Board, &e.Score, &e.MaxTile, &e.Moves, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given board.
// Returns 0 if no scores exist.
func (s *Store) HighScore(board string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE board = ?",
		board,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given board.
func (s *Store) ClearScores(board string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE board = ?", board)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetAllBoardsStats retrieves statistics for every board that has been played.
func (s *Store) GetAllBoardsStats() (map[string]*BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board, COUNT(*), MAX(score), MAX(max_tile), AVG(score), SUM(won), MAX(created_at)
		 FROM scores
		 GROUP BY board`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BoardStats)
	for rows.Next() {
		var st BoardStats
		var lastPlayed any
		if err := rows.Scan(&st.Board, &st.GamesCount, &st.HighScore, &st.BestTile, &st.AvgScore, &st.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Board] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
