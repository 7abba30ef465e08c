// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists batch run outcomes in a SQLite database.
// Recording is opt-in; the render pipeline itself stays stateless.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/svgbatch/pkg/types"
)

const dbFile = "history.db"

// DefaultDir is where the history database lives unless configured.
const DefaultDir = ".svgbatch"

// Store manages the run history SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = 20
	}

	s := &Store{db: db, maxRuns: maxRuns}
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
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			input_dir TEXT NOT NULL,
			rendered INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			run_id TEXT NOT NULL REFERENCES runs(id),
			seq INTEGER NOT NULL,
			path TEXT NOT NULL,
			output TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun inserts a run and its per-file outcomes in one transaction and
// returns the assigned run id.
func (s *Store) RecordRun(ctx context.Context, run types.RunRecord) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, input_dir, rendered, failed) VALUES (?, ?, ?, ?, ?)`,
		id, run.StartedAt.UTC().Format(time.RFC3339Nano), run.InputDir, run.Rendered, run.Failed,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for i, f := range run.Files {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, seq, path, output, status, error) VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, f.Path, f.Output, string(f.Status), f.Error,
		)
		if err != nil {
			return "", fmt.Errorf("inserting outcome for %s: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// ListRuns returns recorded runs most-recent-first, without per-file
// outcomes. A limit of 0 uses the configured maximum.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, input_dir, rendered, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var r types.RunRecord
		var started string
		if err := rows.Scan(&r.ID, &started, &r.InputDir, &r.Rendered, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", started, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run with its per-file outcomes in processing order.
func (s *Store) GetRun(ctx context.Context, id string) (types.RunRecord, error) {
	var r types.RunRecord
	var started string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, input_dir, rendered, failed FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &started, &r.InputDir, &r.Rendered, &r.Failed)
	if err == sql.ErrNoRows {
		return r, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return r, fmt.Errorf("querying run %s: %w", id, err)
	}
	r.StartedAt, err = time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return r, fmt.Errorf("parsing run timestamp %q: %w", started, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT path, output, status, error FROM run_files WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return r, fmt.Errorf("querying run files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f types.FileOutcome
		var status string
		if err := rows.Scan(&f.Path, &f.Output, &status, &f.Error); err != nil {
			return r, fmt.Errorf("scanning outcome: %w", err)
		}
		f.Status = types.RenderStatus(status)
		r.Files = append(r.Files, f)
	}
	if err := rows.Err(); err != nil {
		return r, fmt.Errorf("iterating outcomes: %w", err)
	}
	return r, nil
}
