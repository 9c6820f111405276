// Package postgres persists scheduling run history. The audit log is
// optional infrastructure: the server runs fully without a database, and
// callers treat store errors as non-fatal.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/ignite/campaign-orchestrator/internal/domain"
)

// ErrRunNotFound means no run exists with the requested ID.
var ErrRunNotFound = errors.New("schedule run not found")

// RunRepo stores schedule runs in PostgreSQL.
type RunRepo struct{ db *sql.DB }

// NewRunRepo creates a Postgres-backed run repository.
func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

// Open connects to the database and verifies the connection.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Insert records a completed run. A missing RunID is generated.
func (r *RunRepo) Insert(ctx context.Context, run *domain.ScheduleRun) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO schedule_runs (id, run_type, execution_status, request, response, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, run.RunID, run.RunType, run.ExecutionStatus, []byte(run.Request), []byte(run.Response))
	if err != nil {
		return fmt.Errorf("insert schedule run: %w", err)
	}
	return nil
}

// Get fetches one run by ID.
func (r *RunRepo) Get(ctx context.Context, id string) (*domain.ScheduleRun, error) {
	run := &domain.ScheduleRun{}
	var request, response []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT id, run_type, execution_status, request, response, created_at
		FROM schedule_runs
		WHERE id = $1
	`, id).Scan(&run.RunID, &run.RunType, &run.ExecutionStatus, &request, &response, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule run: %w", err)
	}
	run.Request = request
	run.Response = response
	return run, nil
}

// List returns recent runs, newest first, optionally filtered by type.
func (r *RunRepo) List(ctx context.Context, runType domain.RunType, limit, offset int) ([]domain.ScheduleRun, int, error) {
	if limit <= 0 {
		limit = 50
	}

	countQ := `SELECT COUNT(*) FROM schedule_runs`
	var countArgs []interface{}
	if runType != "" {
		countQ += ` WHERE run_type = $1`
		countArgs = append(countArgs, runType)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count schedule runs: %w", err)
	}

	q := `
		SELECT id, run_type, execution_status, request, response, created_at
		FROM schedule_runs`
	var args []interface{}
	idx := 1
	if runType != "" {
		q += fmt.Sprintf(" WHERE run_type = $%d", idx)
		args = append(args, runType)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ScheduleRun
	for rows.Next() {
		var run domain.ScheduleRun
		var request, response []byte
		if err := rows.Scan(&run.RunID, &run.RunType, &run.ExecutionStatus, &request, &response, &run.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan schedule run: %w", err)
		}
		run.Request = request
		run.Response = response
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate schedule runs: %w", err)
	}

	return runs, total, nil
}
