// Package history persists an audit trail of validation runs in a local
// SQLite file, so data-quality regressions can be traced across runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/shane9b3/cycling/internal/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    started_at  TEXT NOT NULL,
    files       INTEGER NOT NULL,
    invalid     INTEGER NOT NULL,
    errors      INTEGER NOT NULL,
    warnings    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_files (
    run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    path        TEXT NOT NULL,
    kind        TEXT NOT NULL,
    valid       INTEGER NOT NULL,
    errors      TEXT NOT NULL,
    warnings    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_run_files_run ON run_files(run_id);
`

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded validation run.
type Run struct {
	ID        uuid.UUID
	StartedAt time.Time
	Files     int
	Invalid   int
	Errors    int
	Warnings  int
}

// Open initializes or connects to the history database and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun persists one run summary with its per-file outcomes.
func (s *Store) RecordRun(ctx context.Context, run report.RunSummary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, files, invalid, errors, warnings)
         VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.StartedAt.Format(time.RFC3339Nano),
		len(run.Files),
		run.InvalidFiles(),
		run.TotalErrors(),
		run.TotalWarnings(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range run.Files {
		errJSON, err := json.Marshal(f.Errors)
		if err != nil {
			return fmt.Errorf("marshal errors: %w", err)
		}
		warnJSON, err := json.Marshal(f.Warnings)
		if err != nil {
			return fmt.Errorf("marshal warnings: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, path, kind, valid, errors, warnings)
             VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID.String(), f.Path, f.Kind, boolInt(f.Valid()), string(errJSON), string(warnJSON),
		)
		if err != nil {
			return fmt.Errorf("insert run file %s: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, files, invalid, errors, warnings
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			id      string
			started string
		)
		if err := rows.Scan(&id, &started, &r.Files, &r.Invalid, &r.Errors, &r.Warnings); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse run time %q: %w", started, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunFiles returns the per-file outcomes recorded for one run.
func (s *Store) RunFiles(ctx context.Context, runID uuid.UUID) ([]report.FileSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, kind, errors, warnings FROM run_files WHERE run_id = ?`,
		runID.String())
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	var files []report.FileSummary
	for rows.Next() {
		var (
			f                 report.FileSummary
			errJSON, warnJSON string
		)
		if err := rows.Scan(&f.Path, &f.Kind, &errJSON, &warnJSON); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		if err := json.Unmarshal([]byte(errJSON), &f.Errors); err != nil {
			return nil, fmt.Errorf("decode errors: %w", err)
		}
		if err := json.Unmarshal([]byte(warnJSON), &f.Warnings); err != nil {
			return nil, fmt.Errorf("decode warnings: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
