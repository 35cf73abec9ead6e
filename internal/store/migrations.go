package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema contains the DDL for all schedsim tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id           TEXT PRIMARY KEY,
		algorithm    TEXT NOT NULL,
		quantum      INTEGER NOT NULL DEFAULT 0,
		bursts       TEXT NOT NULL,
		processes    TEXT NOT NULL,
		timeline     TEXT NOT NULL DEFAULT '[]',
		total_time   INTEGER NOT NULL,
		average_wait REAL NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
