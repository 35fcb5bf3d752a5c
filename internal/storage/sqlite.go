// Package storage provides the SQLite round journal used for diagnostics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal records how rounds ended. It never holds resumable game
// state: a new engine always starts from its seed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// MemoryPath opens a private in-memory journal.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection for the round journal.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	Variant   string
	Round     int
	Outcome   string // died, won or restarting
	Length    int
	Steps     int
	Eaten     int
	Seed      int64
	CreatedAt time.Time
}

// NewRoundRecord builds a record from an engine summary.
func NewRoundRecord(variant string, seed int64, sum core.RoundSummary) RoundRecord {
	return RoundRecord{
		Variant: variant,
		Round:   sum.Round,
		Outcome: sum.Outcome.String(),
		Length:  sum.Length,
		Steps:   sum.Steps,
		Eaten:   sum.Eaten,
		Seed:    seed,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	memory := dbPath == MemoryPath

	if !memory {
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
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if memory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			round INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			length INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			eaten INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_variant ON rounds(variant);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(variant, length DESC);
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

// RecordRound appends a finished round.
// Returns the ID of the inserted record.
func (s *Store) RecordRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (variant, round, outcome, length, steps, eaten, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Variant, r.Round, r.Outcome, r.Length, r.Steps, r.Eaten, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the latest rounds, newest first. An empty variant
// matches every variant.
func (s *Store) RecentRounds(variant string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, round, outcome, length, steps, eaten, seed, created_at
		 FROM rounds
		 WHERE ? = '' OR variant = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Round, &r.Outcome, &r.Length,
			&r.Steps, &r.Eaten, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearRounds deletes the journal of one variant, or of all variants when
// variant is empty.
func (s *Store) ClearRounds(variant string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// RoundStats contains aggregated statistics for a variant.
type RoundStats struct {
	Variant    string
	Rounds     int
	Won        int
	Died       int
	Restarted  int
	BestLength int
	AvgLength  float64
	TotalEaten int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a specific variant.
func (s *Store) Stats(variant string) (*RoundStats, error) {
	stats := &RoundStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'died'), 0),
		        COALESCE(SUM(outcome = 'restarting'), 0),
		        COALESCE(MAX(length), 0),
		        COALESCE(AVG(length), 0),
		        COALESCE(SUM(eaten), 0)
		 FROM rounds WHERE variant = ?`,
		variant,
	).Scan(&stats.Rounds, &stats.Won, &stats.Died, &stats.Restarted,
		&stats.BestLength, &stats.AvgLength, &stats.TotalEaten)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE variant = ? ORDER BY id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Variants lists the variants present in the journal, sorted by name.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant FROM rounds ORDER BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return variants, nil
}

// parseTime handles both time.Time and string datetime columns.
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
