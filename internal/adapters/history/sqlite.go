package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	environment TEXT NOT NULL,
	address TEXT NOT NULL,
	mode TEXT NOT NULL,
	started_at TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	passed INTEGER NOT NULL DEFAULT 0,
	failed INTEGER NOT NULL DEFAULT 0,
	errored INTEGER NOT NULL DEFAULT 0,
	skipped INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS checks (
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	accessor TEXT NOT NULL,
	expected TEXT NOT NULL,
	actual TEXT,
	status TEXT NOT NULL,
	error TEXT,
	duration_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// SQLiteStore records verification runs in a local SQLite database. The database is
// opened on first use so read-only commands never create it.
type SQLiteStore struct {
	path   string
	logger *slog.Logger

	once    sync.Once
	db      *sql.DB
	openErr error
}

// NewSQLiteStore creates a store backed by the runtime history path
func NewSQLiteStore(cfg *config.RuntimeConfig, logger *slog.Logger) (*SQLiteStore, func()) {
	s := &SQLiteStore{path: cfg.HistoryPath(), logger: logger}
	return s, func() {
		if err := s.Close(); err != nil {
			logger.Warn("failed to close history database", "error", err)
		}
	}
}

func (s *SQLiteStore) open(ctx context.Context) (*sql.DB, error) {
	s.once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			s.openErr = fmt.Errorf("creating data directory: %w", err)
			return
		}

		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			s.openErr = fmt.Errorf("opening database: %w", err)
			return
		}

		for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", schema} {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				_ = db.Close()
				s.openErr = fmt.Errorf("initialising database: %w", err)
				return
			}
		}
		s.db = db
	})
	return s.db, s.openErr
}

// Close closes the database connection, if it was opened
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores a run and its checks, returning the run id
func (s *SQLiteStore) Record(ctx context.Context, result *domain.VerificationResult) (int64, error) {
	db, err := s.open(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (environment, address, mode, started_at, duration_ms, passed, failed, errored, skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Environment,
		result.Address,
		string(result.Mode),
		result.StartedAt.UTC().Format(time.RFC3339Nano),
		result.Duration.Milliseconds(),
		result.Count(domain.CheckPassed),
		result.Count(domain.CheckFailed),
		result.Count(domain.CheckErrored),
		result.Count(domain.CheckSkipped),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, check := range result.Checks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO checks (run_id, accessor, expected, actual, status, error, duration_ms)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, check.Accessor, check.Expected, check.Actual, string(check.Status), check.Message, check.Duration.Milliseconds(),
		); err != nil {
			return 0, fmt.Errorf("inserting check: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}

	s.logger.Debug("recorded verification run", "id", id, "environment", result.Environment)
	return id, nil
}

// Recent returns the most recent runs, newest first
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]usecase.HistoryEntry, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, environment, address, mode, started_at, duration_ms, passed, failed, errored, skipped
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []usecase.HistoryEntry
	for rows.Next() {
		var (
			e          usecase.HistoryEntry
			mode       string
			startedAt  string
			durationMS int64
		)
		if err := rows.Scan(&e.ID, &e.Environment, &e.Address, &mode, &startedAt, &durationMS,
			&e.Passed, &e.Failed, &e.Errored, &e.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Mode = domain.VerifyMode(mode)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if e.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("parsing run %d timestamp: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ usecase.RunHistory = (*SQLiteStore)(nil)
