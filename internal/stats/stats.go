// Package stats records finished rounds in SQLite and summarizes them
// into player statistics.
package stats

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// Result describes one finished round.
type Result struct {
	Answer           string
	Won              bool
	Guesses          int
	IncorrectGuesses int
	FinishedAt       time.Time
}

// Summary aggregates all recorded rounds.
type Summary struct {
	Played        int
	Won           int
	CurrentStreak int // Consecutive wins ending with the latest round
	MaxStreak     int
}

// WinRate returns the share of rounds won as a percentage.
func (s Summary) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) * 100 / float64(s.Played)
}

// Store is a SQLite-backed round history.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the database at path and applies
// the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// A single connection keeps every query on the same SQLite handle.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a finished round.
func (s *Store) Record(ctx context.Context, r Result) error {
	outcome := "lost"
	if r.Won {
		outcome = "won"
	}
	finished := r.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (answer, outcome, guesses, incorrect_guesses, finished_at) VALUES (?, ?, ?, ?, ?)`,
		r.Answer, outcome, r.Guesses, r.IncorrectGuesses, finished.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	return nil
}

// Summary computes totals and win streaks over every recorded round.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT outcome FROM rounds ORDER BY id`)
	if err != nil {
		return Summary{}, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var sum Summary
	for rows.Next() {
		var outcome string
		if err := rows.Scan(&outcome); err != nil {
			return Summary{}, fmt.Errorf("scan round: %w", err)
		}
		sum.Played++
		if outcome == "won" {
			sum.Won++
			sum.CurrentStreak++
			sum.MaxStreak = max(sum.MaxStreak, sum.CurrentStreak)
		} else {
			sum.CurrentStreak = 0
		}
	}
	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("iterate rounds: %w", err)
	}
	return sum, nil
}

// migrate applies embedded sql/*.sql files in lexical order, recording each
// in _migrations so it runs only once.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
