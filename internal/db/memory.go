package db

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/udisondev/spirego/internal/model"
)

// MemoryRunRepository is an in-process RunRepository, used when the
// database is disabled.
type MemoryRunRepository struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]RunRecord
}

// NewMemoryRunRepository creates an empty repository.
func NewMemoryRunRepository() *MemoryRunRepository {
	return &MemoryRunRepository{runs: make(map[uuid.UUID]RunRecord)}
}

func (m *MemoryRunRepository) SaveRun(_ context.Context, rec RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[rec.ID] = rec
	return nil
}

func (m *MemoryRunRepository) GetRun(_ context.Context, id uuid.UUID) (RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.runs[id]
	if !ok {
		return RunRecord{}, fmt.Errorf("run %s: %w", id, model.ErrNotFound)
	}
	return rec, nil
}

func (m *MemoryRunRepository) ListRuns(_ context.Context, limit int) ([]RunRecord, error) {
	m.mu.RLock()
	out := make([]RunRecord, 0, len(m.runs))
	for _, rec := range m.runs {
		out = append(out, rec)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b RunRecord) int {
		if c := b.FinishedAt.Compare(a.FinishedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRunRepository) Stats(_ context.Context) (RunStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		s    RunStats
		acts int
	)
	for _, rec := range m.runs {
		s.Runs++
		acts += rec.ActReached
		switch rec.Outcome {
		case model.OutcomeWon:
			s.Wins++
		case model.OutcomeLost:
			s.Losses++
		case model.OutcomeAbandoned:
			s.Abandoned++
		}
	}
	if s.Runs > 0 {
		s.MeanActReached = float64(acts) / float64(s.Runs)
	}
	return s, nil
}
