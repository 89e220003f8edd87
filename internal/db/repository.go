package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/spirego/internal/game/run"
	"github.com/udisondev/spirego/internal/model"
)

// RunRecord is the stored result of one finished run.
type RunRecord struct {
	ID            uuid.UUID
	Character     string
	Seed          int64
	ActReached    int
	FloorsCleared int
	Outcome       model.Outcome
	Turns         int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// RunStats aggregates stored runs.
type RunStats struct {
	Runs           int
	Wins           int
	Losses         int
	Abandoned      int
	MeanActReached float64
}

// WinRate returns Wins/Runs, or 0 with no runs.
func (s RunStats) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
}

// RunRepository stores run history.
type RunRepository interface {
	// SaveRun inserts the record, replacing an existing one with the same ID.
	SaveRun(ctx context.Context, rec RunRecord) error
	// GetRun returns model.ErrNotFound for an unknown id.
	GetRun(ctx context.Context, id uuid.UUID) (RunRecord, error)
	// ListRuns returns the most recently finished runs first.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
	Stats(ctx context.Context) (RunStats, error)
}

// RecordFromSummary converts a finished run summary into a RunRecord.
// Runs still in progress are recorded as abandoned.
func RecordFromSummary(sum run.Summary) (RunRecord, error) {
	id, err := uuid.Parse(sum.RunID)
	if err != nil {
		return RunRecord{}, err
	}
	outcome := sum.Outcome
	if outcome == model.OutcomeInProgress {
		outcome = model.OutcomeAbandoned
	}
	finished := sum.FinishedAt
	if finished.IsZero() {
		finished = sum.StartedAt
	}
	return RunRecord{
		ID:            id,
		Character:     sum.Character,
		Seed:          sum.Seed,
		ActReached:    sum.ActReached,
		FloorsCleared: sum.FloorsCleared,
		Outcome:       outcome,
		Turns:         sum.Turns,
		StartedAt:     sum.StartedAt,
		FinishedAt:    finished,
	}, nil
}

var (
	_ RunRepository = (*PostgresRunRepository)(nil)
	_ RunRepository = (*MemoryRunRepository)(nil)
)
