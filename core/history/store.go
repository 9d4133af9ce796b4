// Package history records backend generation runs in a local database.
//
// Reads are tiered: an LRU cache serves recent runs, sqlite holds
// everything durably. Records are written through to sqlite, so cache
// eviction never loses data.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite"

	"github.com/genesis-engine/genesis-backend/core/errors"
)

const (
	defaultRecentCacheSize = 128
	defaultListLimit       = 20
)

// Run is one backend generation run.
type Run struct {
	ID         string    `json:"id"`
	Project    string    `json:"project"`
	Framework  string    `json:"framework"`
	OutputPath string    `json:"output_path"`
	FileCount  int       `json:"file_count"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

type Config struct {
	// DBPath is the sqlite database location. Required.
	DBPath string

	// RecentCacheSize bounds the in-memory recent-run cache.
	RecentCacheSize int
}

// Store is the run history database.
type Store struct {
	db     *sql.DB
	recent *lru.Cache[string, *Run]
}

func NewStore(cfg Config) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("history: db path required")
	}
	if cfg.RecentCacheSize <= 0 {
		cfg.RecentCacheSize = defaultRecentCacheSize
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("history: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	recent, err := lru.New[string, *Run](cfg.RecentCacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, recent: recent}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	project TEXT NOT NULL,
	framework TEXT NOT NULL,
	output_path TEXT,
	file_count INTEGER NOT NULL,
	success INTEGER NOT NULL,
	error TEXT,
	started_at TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_project ON runs(project);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`

// Record stores a run. A missing ID is assigned.
func (s *Store) Record(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	success := 0
	if run.Success {
		success = 1
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO runs
		(id, project, framework, output_path, file_count, success, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID, run.Project, run.Framework, run.OutputPath,
		run.FileCount, success, run.Error, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("history: record run: %w", err)
	}

	stored := *run
	s.recent.Add(run.ID, &stored)

	return nil
}

// Get retrieves a run by ID, recent cache first.
func (s *Store) Get(id string) (*Run, error) {
	if run, ok := s.recent.Get(id); ok {
		copied := *run
		return &copied, nil
	}

	row := s.db.QueryRow(`
		SELECT id, project, framework, output_path, file_count, success, error, started_at, finished_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s: %w", id, errors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("history: get run: %w", err)
	}

	s.recent.Add(run.ID, run)
	copied := *run
	return &copied, nil
}

// List returns the most recent runs, newest first. A non-positive limit
// uses the default.
func (s *Store) List(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(`
		SELECT id, project, framework, output_path, file_count, success, error, started_at, finished_at
		FROM runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// ListByProject returns the most recent runs for one project, newest first.
func (s *Store) ListByProject(project string, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(`
		SELECT id, project, framework, output_path, file_count, success, error, started_at, finished_at
		FROM runs WHERE project = ? ORDER BY started_at DESC LIMIT ?
	`, project, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (s *Store) Close() error {
	s.recent.Purge()
	return s.db.Close()
}

func scanRun(scan func(dest ...any) error) (*Run, error) {
	var run Run
	var outputPath, errStr sql.NullString
	var success int

	err := scan(
		&run.ID, &run.Project, &run.Framework, &outputPath,
		&run.FileCount, &success, &errStr, &run.StartedAt, &run.FinishedAt,
	)
	if err != nil {
		return nil, err
	}

	run.Success = success != 0
	if outputPath.Valid {
		run.OutputPath = outputPath.String
	}
	if errStr.Valid {
		run.Error = errStr.String
	}

	return &run, nil
}
