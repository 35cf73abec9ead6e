package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/schedsim/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// CreateRun persists a finished simulation run.
func (s *SQLiteStore) CreateRun(ctx context.Context, run *model.Run) error {
	s.logger.Debug("sql", "op", "create_run", "id", run.ID)

	bursts, err := json.Marshal(run.Bursts)
	if err != nil {
		return fmt.Errorf("marshal bursts: %w", err)
	}
	processes, err := json.Marshal(run.Processes)
	if err != nil {
		return fmt.Errorf("marshal processes: %w", err)
	}
	timeline, err := json.Marshal(run.Timeline)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, algorithm, quantum, bursts, processes, timeline, total_time, average_wait, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, string(run.Algorithm), run.Quantum, string(bursts), string(processes),
		string(timeline), run.TotalTime, run.AverageWait, run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// GetRun returns a run by ID, or nil if it does not exist.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*model.Run, error) {
	s.logger.Debug("sql", "op", "get_run", "id", id)

	row := s.db.QueryRowContext(ctx, `
		SELECT id, algorithm, quantum, bursts, processes, timeline, total_time, average_wait, created_at
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns runs newest-first with pagination and an optional
// algorithm filter, plus the total matching count.
func (s *SQLiteStore) ListRuns(ctx context.Context, opts model.ListOptions) ([]*model.Run, int, error) {
	opts.Clamp()
	s.logger.Debug("sql", "op", "list_runs", "limit", opts.Limit, "offset", opts.Offset)

	where := ""
	args := []any{}
	if opts.Algorithm != "" {
		where = " WHERE algorithm = ?"
		args = append(args, string(opts.Algorithm))
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count runs: %w", err)
	}

	query := `
		SELECT id, algorithm, quantum, bursts, processes, timeline, total_time, average_wait, created_at
		FROM runs` + where + ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*model.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, total, rows.Err()
}

// DeleteRun removes a run by ID. Deleting an absent run is not an error.
func (s *SQLiteStore) DeleteRun(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete_run", "id", id)

	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanRun.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*model.Run, error) {
	var (
		run       model.Run
		algorithm string
		bursts    string
		processes string
		timeline  string
		createdAt string
	)

	if err := sc.Scan(&run.ID, &algorithm, &run.Quantum, &bursts, &processes,
		&timeline, &run.TotalTime, &run.AverageWait, &createdAt); err != nil {
		return nil, err
	}

	run.Algorithm = model.Algorithm(algorithm)
	if err := json.Unmarshal([]byte(bursts), &run.Bursts); err != nil {
		return nil, fmt.Errorf("unmarshal bursts: %w", err)
	}
	if err := json.Unmarshal([]byte(processes), &run.Processes); err != nil {
		return nil, fmt.Errorf("unmarshal processes: %w", err)
	}
	if err := json.Unmarshal([]byte(timeline), &run.Timeline); err != nil {
		return nil, fmt.Errorf("unmarshal timeline: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = ts

	return &run, nil
}
