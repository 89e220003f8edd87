package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spirego/internal/config"
	gamerun "github.com/udisondev/spirego/internal/game/run"
	"github.com/udisondev/spirego/internal/model"
)

func TestRunSeeds(t *testing.T) {
	seeds, err := runSeeds(config.Simulator{Runs: 3, BaseSeed: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12}, seeds)

	seeds, err = runSeeds(config.Simulator{Runs: 2})
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	for _, s := range seeds {
		assert.GreaterOrEqual(t, s, int64(0))
	}
}

func TestSimulateRun(t *testing.T) {
	sim := config.DefaultSimulator()
	rec, err := simulateRun(context.Background(), gamerun.DefaultOptions(), sim, 99)
	require.NoError(t, err)

	assert.Equal(t, "ironclad", rec.Character)
	assert.Equal(t, int64(99), rec.Seed)
	assert.Contains(t, []model.Outcome{model.OutcomeWon, model.OutcomeLost, model.OutcomeAbandoned}, rec.Outcome)
	assert.False(t, rec.FinishedAt.Before(rec.StartedAt))
}

func TestSimulateRun_UnknownCharacter(t *testing.T) {
	sim := config.DefaultSimulator()
	sim.Character = "watcher"
	_, err := simulateRun(context.Background(), gamerun.DefaultOptions(), sim, 1)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}
