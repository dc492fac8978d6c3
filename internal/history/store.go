// Package history keeps a SQLite log of finished and interrupted phases.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/core/timekeeper"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one stored phase record.
type Entry struct {
	ID int64
	timekeeper.PhaseRecord
}

// Store wraps SQLite access for phase records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS phases (
			id INTEGER PRIMARY KEY,
			kind TEXT NOT NULL,
			planned_seconds INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			completed INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_phases_ended_at ON phases(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate history db: %w", err)
		}
	}
	return nil
}

// Insert stores a phase record.
func (s *Store) Insert(ctx context.Context, record timekeeper.PhaseRecord) (int64, error) {
	completed := 0
	if record.Completed {
		completed = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO phases (kind, planned_seconds, elapsed_ms, started_at, ended_at, completed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(record.Kind),
		int64(record.Planned/time.Second),
		record.Elapsed.Milliseconds(),
		record.StartedAt.UTC().Format(timeLayout),
		record.EndedAt.UTC().Format(timeLayout),
		completed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert phase: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert phase: %w", err)
	}
	return id, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, planned_seconds, elapsed_ms, started_at, ended_at, completed
		 FROM phases ORDER BY ended_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query phases: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			kind      string
			planned   int64
			elapsed   int64
			startedAt string
			endedAt   string
			completed int
		)
		if err := rows.Scan(&entry.ID, &kind, &planned, &elapsed, &startedAt, &endedAt, &completed); err != nil {
			return nil, fmt.Errorf("scan phase: %w", err)
		}
		entry.Kind = timekeeper.Kind(kind)
		entry.Planned = time.Duration(planned) * time.Second
		entry.Elapsed = time.Duration(elapsed) * time.Millisecond
		entry.Completed = completed != 0
		if entry.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if entry.EndedAt, err = time.Parse(timeLayout, endedAt); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query phases: %w", err)
	}
	return entries, nil
}

// CompletedSince counts phases of kind that ran to the end after since.
func (s *Store) CompletedSince(ctx context.Context, kind timekeeper.Kind, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM phases WHERE kind = ? AND completed = 1 AND ended_at >= ?`,
		string(kind),
		since.UTC().Format(timeLayout),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count phases: %w", err)
	}
	return count, nil
}
