// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal persists a per-project log of tool invocations in SQLite.
// The journal is observational only: recording failures are reported to the
// caller but must never change a conversion's verdict.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/dock-prep/pkg/types"
)

const dbFile = "dock-prep.db"

// Store manages the invocation journal database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the journal database at dir/dock-prep.db,
// creating the schema when absent.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tool TEXT NOT NULL,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			status TEXT NOT NULL,
			exit_code INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			output_size INTEGER NOT NULL,
			started_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_tool ON runs(tool)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one finished invocation.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (tool, input_path, output_path, status, exit_code, duration_ms, output_size, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(rec.Tool), rec.InputPath, rec.OutputPath, string(rec.Status),
		rec.ExitCode, rec.Duration.Milliseconds(), rec.OutputSize,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting run record: %w", err)
	}
	return nil
}

// List returns the most recent invocations, newest first, capped at limit
// (20 when limit is not positive).
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool, input_path, output_path, status, exit_code, duration_ms, output_size, started_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var (
			rec        types.RunRecord
			tool       string
			status     string
			durationMS int64
			startedAt  string
		)
		if err := rows.Scan(&rec.ID, &tool, &rec.InputPath, &rec.OutputPath,
			&status, &rec.ExitCode, &durationMS, &rec.OutputSize, &startedAt); err != nil {
			return nil, fmt.Errorf("scanning run record: %w", err)
		}
		rec.Tool = types.Tool(tool)
		rec.Status = types.RunStatus(status)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if t, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			rec.StartedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
