// Package store persists a history of report runs to SQLite so successive
// runs can be compared after the fact.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	generated_at TEXT    NOT NULL,
	rows_read    INTEGER NOT NULL,
	rows_kept    INTEGER NOT NULL,
	start_year   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_impacts (
	run_id          INTEGER NOT NULL REFERENCES runs(id),
	view            TEXT    NOT NULL,
	rank            INTEGER NOT NULL,
	event_type      TEXT    NOT NULL,
	fatalities      INTEGER NOT NULL DEFAULT 0,
	injuries        INTEGER NOT NULL DEFAULT 0,
	property_damage REAL    NOT NULL DEFAULT 0,
	crop_damage     REAL    NOT NULL DEFAULT 0,
	total           REAL    NOT NULL,
	PRIMARY KEY (run_id, view, rank)
);
`

// Store wraps the run-history database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records one pipeline result and its ranked rows in a single
// transaction, returning the new run's ID.
func (s *Store) SaveRun(ctx context.Context, res pipeline.Result) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	r, err := tx.ExecContext(ctx,
		`INSERT INTO runs (generated_at, rows_read, rows_kept, start_year) VALUES (?, ?, ?, ?)`,
		res.GeneratedAt.UTC().Format(time.RFC3339), res.RowsRead, res.RowsKept, res.StartYear,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	const insertImpact = `INSERT INTO run_impacts
		(run_id, view, rank, event_type, fatalities, injuries, property_damage, crop_damage, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, h := range res.Health {
		if _, err := tx.ExecContext(ctx, insertImpact,
			runID, "health", i+1, h.EventType, h.Fatalities, h.Injuries, 0, 0, float64(h.TotalAffected),
		); err != nil {
			return 0, fmt.Errorf("insert health impact: %w", err)
		}
	}
	for i, e := range res.Economy {
		if _, err := tx.ExecContext(ctx, insertImpact,
			runID, "economy", i+1, e.EventType, 0, 0, e.PropertyDamage, e.CropDamage, e.TotalDamage,
		); err != nil {
			return 0, fmt.Errorf("insert economy impact: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}
