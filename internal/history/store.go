// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     history
// Description: SQLite run history
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package history records completed and failed runs in a local SQLite
// database.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msto63/scripter/internal/executor"
	scerr "github.com/msto63/scripter/pkg/core/errors"
)

// Run is one recorded run
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Script     string
	Backend    string
	DryRun     bool
	Status     string
	Statements int
	Executed   int
	FailedLine int
	Error      string
}

// Elapsed returns the run's wall time
func (r *Run) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// FromResult converts an executor result into a history record
func FromResult(res *executor.RunResult) *Run {
	run := &Run{
		ID:         res.RunID,
		StartedAt:  res.StartedAt,
		FinishedAt: res.FinishedAt,
		Script:     res.Source,
		Backend:    res.Backend,
		DryRun:     res.DryRun,
		Status:     res.Status,
		Statements: res.Total,
		Executed:   res.Executed(),
	}
	if res.Err != nil {
		run.Error = res.Err.Error()
	}
	for _, step := range res.Steps {
		if step.Status == executor.StatusFailed {
			run.FailedLine = step.Line
		}
	}
	return run
}

// Filter selects runs for List
type Filter struct {
	Script string
	Status string
	Since  time.Time
	Limit  int
}

// Store persists runs
type Store interface {
	Record(ctx context.Context, run *Run) error
	List(ctx context.Context, filter Filter) ([]*Run, error)
	Get(ctx context.Context, id string) (*Run, error)
	Prune(ctx context.Context, keep int) (int64, error)
	Close() error
}

// SQLiteStore implements Store on SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config configures the SQLite store
type Config struct {
	Path string
}

// Open opens or creates the history database
func Open(cfg Config) (*SQLiteStore, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, historyErr(err, "failed to create directory").WithDetail("path", dir)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, historyErr(err, "failed to open database").WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, historyErr(err, "failed to initialize schema").WithDetail("path", cfg.Path)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		finished_at DATETIME NOT NULL,
		script TEXT NOT NULL,
		backend TEXT NOT NULL,
		dry_run INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		statements INTEGER NOT NULL,
		executed INTEGER NOT NULL,
		failed_line INTEGER NOT NULL DEFAULT 0,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_script ON runs(script);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errText sql.NullString
	if run.Error != "" {
		errText = sql.NullString{String: run.Error, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, script, backend, dry_run,
			status, statements, executed, failed_line, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.Script, run.Backend, run.DryRun,
		run.Status, run.Statements, run.Executed, run.FailedLine, errText)
	if err != nil {
		return historyErr(err, "failed to record run").WithDetail("run_id", run.ID)
	}
	return nil
}

const selectRuns = `SELECT id, started_at, finished_at, script, backend, dry_run,
	status, statements, executed, failed_line, error FROM runs`

// List returns runs matching filter, newest first
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := selectRuns + ` WHERE 1=1`
	var args []interface{}

	if filter.Script != "" {
		query += " AND script = ?"
		args = append(args, filter.Script)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if !filter.Since.IsZero() {
		query += " AND started_at >= ?"
		args = append(args, filter.Since.UTC())
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, historyErr(err, "failed to query runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, historyErr(err, "failed to scan run")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, historyErr(err, "failed to read runs")
	}

	return runs, nil
}

// Get returns one run by id
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, err := scanRun(s.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, scerr.Newf("run %s not found", id).WithCode(scerr.CodeHistoryError)
	}
	if err != nil {
		return nil, historyErr(err, "failed to load run").WithDetail("run_id", id)
	}
	return run, nil
}

// Prune deletes all but the newest keep runs. keep <= 0 keeps everything.
func (s *SQLiteStore) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, historyErr(err, "failed to prune runs")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var errText sql.NullString

	if err := row.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Script, &run.Backend,
		&run.DryRun, &run.Status, &run.Statements, &run.Executed, &run.FailedLine, &errText); err != nil {
		return nil, err
	}
	if errText.Valid {
		run.Error = errText.String
	}
	return &run, nil
}

func historyErr(err error, message string) *scerr.Error {
	return scerr.Wrap(err, message).WithCode(scerr.CodeHistoryError)
}
