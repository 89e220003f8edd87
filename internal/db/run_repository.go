package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/spirego/internal/model"
)

// PostgresRunRepository implements RunRepository on PostgreSQL.
type PostgresRunRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRunRepository creates a PostgreSQL-backed repository.
func NewPostgresRunRepository(pool *pgxpool.Pool) *PostgresRunRepository {
	return &PostgresRunRepository{pool: pool}
}

const runColumns = `id::text, character, seed, act_reached, floors_cleared, outcome, turns, started_at, finished_at`

func (r *PostgresRunRepository) SaveRun(ctx context.Context, rec RunRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO runs (id, character, seed, act_reached, floors_cleared, outcome, turns, started_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   act_reached = EXCLUDED.act_reached,
		   floors_cleared = EXCLUDED.floors_cleared,
		   outcome = EXCLUDED.outcome,
		   turns = EXCLUDED.turns,
		   finished_at = EXCLUDED.finished_at`,
		rec.ID.String(), rec.Character, rec.Seed, rec.ActReached, rec.FloorsCleared,
		string(rec.Outcome), rec.Turns, rec.StartedAt, rec.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", rec.ID, err)
	}
	return nil
}

func (r *PostgresRunRepository) GetRun(ctx context.Context, id uuid.UUID) (RunRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+runColumns+` FROM runs WHERE id = $1`, id.String())
	rec, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("run %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("querying run %s: %w", id, err)
	}
	return rec, nil
}

func (r *PostgresRunRepository) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY finished_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return out, nil
}

func (r *PostgresRunRepository) Stats(ctx context.Context) (RunStats, error) {
	var s RunStats
	err := r.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE outcome = 'won'),
		        count(*) FILTER (WHERE outcome = 'lost'),
		        count(*) FILTER (WHERE outcome = 'abandoned'),
		        COALESCE(avg(act_reached), 0)::float8
		 FROM runs`,
	).Scan(&s.Runs, &s.Wins, &s.Losses, &s.Abandoned, &s.MeanActReached)
	if err != nil {
		return RunStats{}, fmt.Errorf("querying run stats: %w", err)
	}
	return s, nil
}

func scanRun(row pgx.Row) (RunRecord, error) {
	var (
		rec     RunRecord
		id      string
		outcome string
	)
	if err := row.Scan(&id, &rec.Character, &rec.Seed, &rec.ActReached, &rec.FloorsCleared,
		&outcome, &rec.Turns, &rec.StartedAt, &rec.FinishedAt); err != nil {
		return RunRecord{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return RunRecord{}, fmt.Errorf("parsing run id %q: %w", id, err)
	}
	rec.ID = parsed
	rec.Outcome = model.Outcome(outcome)
	return rec, nil
}
