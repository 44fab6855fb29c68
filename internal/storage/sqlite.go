// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-ballpark/internal/baseball"
	"github.com/vovakirdan/tui-ballpark/internal/engine"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID           int64
	GameID       string
	Home         string
	Opponent     string
	Runs         int
	OpponentRuns int
	Innings      int
	Seed         int64
	CreatedAt    time.Time
}

// Won reports whether the home side finished ahead.
func (g GameRecord) Won() bool {
	return g.Runs > g.OpponentRuns
}

// CareerLine is a batter's totals across every saved game.
type CareerLine struct {
	Name   string
	Games  int
	AtBats int
	Hits   int
	RBIs   int
}

// Average returns hits per at-bat, or 0 with no at-bats.
func (c CareerLine) Average() float64 {
	if c.AtBats == 0 {
		return 0
	}
	return float64(c.Hits) / float64(c.AtBats)
}

// TeamStats contains aggregated results for one home team.
type TeamStats struct {
	Team        string
	Games       int
	Wins        int
	RunsFor     int
	RunsAgainst int
	LastPlayed  time.Time
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

	// Create parent directories
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

	// SQLite allows one writer; SSH players finish games concurrently.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			home TEXT NOT NULL,
			opponent TEXT NOT NULL,
			runs INTEGER NOT NULL DEFAULT 0,
			opponent_runs INTEGER NOT NULL DEFAULT 0,
			innings INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_home ON games(home);

		CREATE TABLE IF NOT EXISTS batting_lines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL REFERENCES games(game_id),
			slot INTEGER NOT NULL,
			name TEXT NOT NULL,
			at_bats INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			rbis INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_batting_lines_game ON batting_lines(game_id);
		CREATE INDEX IF NOT EXISTS idx_batting_lines_name ON batting_lines(name);
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

// SaveGame records a finished game and its box score in one transaction.
// Returns the ID of the inserted game row.
func (s *Store) SaveGame(game GameRecord, lines []baseball.BattingLine) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO games (game_id, home, opponent, runs, opponent_runs, innings, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		game.GameID, game.Home, game.Opponent, game.Runs, game.OpponentRuns, game.Innings, game.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for slot, l := range lines {
		if _, err := tx.Exec(
			`INSERT INTO batting_lines (game_id, slot, name, at_bats, hits, rbis)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			game.GameID, slot, l.Name, l.AtBats, l.Hits, l.RBIs,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save batting line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id, nil
}

// RecentGames retrieves the most recent games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, home, opponent, runs, opponent_runs, innings, seed, created_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var createdAt any
		if err := rows.Scan(&g.ID, &g.GameID, &g.Home, &g.Opponent, &g.Runs, &g.OpponentRuns,
			&g.Innings, &g.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// GameByID retrieves a game by its game ID. Returns nil if it does not exist.
func (s *Store) GameByID(gameID string) (*GameRecord, error) {
	var g GameRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, home, opponent, runs, opponent_runs, innings, seed, created_at
		 FROM games
		 WHERE game_id = ?`,
		gameID,
	).Scan(&g.ID, &g.GameID, &g.Home, &g.Opponent, &g.Runs, &g.OpponentRuns, &g.Innings, &g.Seed, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}

	g.CreatedAt = parseTime(createdAt)
	return &g, nil
}

// GameByPrefix retrieves the newest game whose ID starts with prefix.
// Returns nil if none matches.
func (s *Store) GameByPrefix(prefix string) (*GameRecord, error) {
	if prefix == "" {
		return nil, nil
	}

	var g GameRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, home, opponent, runs, opponent_runs, innings, seed, created_at
		 FROM games
		 WHERE substr(game_id, 1, ?) = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		len(prefix), prefix,
	).Scan(&g.ID, &g.GameID, &g.Home, &g.Opponent, &g.Runs, &g.OpponentRuns, &g.Innings, &g.Seed, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}

	g.CreatedAt = parseTime(createdAt)
	return &g, nil
}

// GameLines retrieves a game's box score in batting order.
func (s *Store) GameLines(gameID string) ([]baseball.BattingLine, error) {
	rows, err := s.db.Query(
		`SELECT name, at_bats, hits, rbis
		 FROM batting_lines
		 WHERE game_id = ?
		 ORDER BY slot`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query batting lines: %w", err)
	}
	defer rows.Close()

	var lines []baseball.BattingLine
	for rows.Next() {
		var l baseball.BattingLine
		if err := rows.Scan(&l.Name, &l.AtBats, &l.Hits, &l.RBIs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return lines, nil
}

// CareerLines retrieves batting totals across all games, best run
// producers first.
func (s *Store) CareerLines(limit int) ([]CareerLine, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name, COUNT(DISTINCT game_id), SUM(at_bats), SUM(hits), SUM(rbis)
		 FROM batting_lines
		 GROUP BY name
		 ORDER BY SUM(rbis) DESC, SUM(hits) DESC, name
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query career lines: %w", err)
	}
	defer rows.Close()

	var lines []CareerLine
	for rows.Next() {
		var c CareerLine
		if err := rows.Scan(&c.Name, &c.Games, &c.AtBats, &c.Hits, &c.RBIs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lines = append(lines, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return lines, nil
}

// AllTeamStats retrieves win/loss totals for every team that has played.
func (s *Store) AllTeamStats() (map[string]*TeamStats, error) {
	rows, err := s.db.Query(
		`SELECT home, COUNT(*), SUM(CASE WHEN runs > opponent_runs THEN 1 ELSE 0 END),
		        SUM(runs), SUM(opponent_runs), MAX(created_at)
		 FROM games
		 GROUP BY home`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get team stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TeamStats)
	for rows.Next() {
		var t TeamStats
		var lastPlayed any
		if err := rows.Scan(&t.Team, &t.Games, &t.Wins, &t.RunsFor, &t.RunsAgainst, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		t.LastPlayed = parseTime(lastPlayed)
		stats[t.Team] = &t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// RecordGame implements engine.ResultRecorder.
// This adapter lets a Session save its result without a storage dependency.
func (s *Store) RecordGame(result engine.GameResult) error {
	_, err := s.SaveGame(GameRecord{
		GameID:       result.ID,
		Home:         result.Home,
		Opponent:     result.Opponent,
		Runs:         result.Runs,
		OpponentRuns: result.OpponentRuns,
		Innings:      result.Innings,
		Seed:         result.Seed,
	}, result.Lines)
	return err
}

// Ensure Store implements ResultRecorder
var _ engine.ResultRecorder = (*Store)(nil)

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
