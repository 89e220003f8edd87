// Command simulator plays seeded runs headlessly with the greedy policy and
// records the outcomes.
//
// Usage:
//
//	SPIREGO_CONFIG=config/spirego.yaml go run ./cmd/simulator
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/spirego/internal/config"
	"github.com/udisondev/spirego/internal/db"
	"github.com/udisondev/spirego/internal/game/autoplay"
	gamerun "github.com/udisondev/spirego/internal/game/run"
	"github.com/udisondev/spirego/internal/rng"
)

const ConfigPath = "config/spirego.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("SPIREGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("spirego simulator starting",
		"log_level", cfg.LogLevel,
		"runs", cfg.Simulator.Runs,
		"workers", cfg.Simulator.Workers,
		"character", cfg.Simulator.Character)

	batch := db.NewMemoryRunRepository()
	repos := []db.RunRepository{batch}

	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		repos = append(repos, database.Runs())
	}

	seeds, err := runSeeds(cfg.Simulator)
	if err != nil {
		return err
	}

	opts := gamerun.OptionsFromConfig(cfg.Rules)
	bar := progressbar.Default(int64(len(seeds)), "simulating")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Simulator.Workers)
	for i, seed := range seeds {
		g.Go(func() error {
			rec, err := simulateRun(gctx, opts, cfg.Simulator, seed)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			for _, repo := range repos {
				if err := repo.SaveRun(gctx, rec); err != nil {
					return fmt.Errorf("saving run %d: %w", i, err)
				}
			}
			slog.Debug("run recorded", "run", rec.ID, "seed", seed, "outcome", rec.Outcome, "act", rec.ActReached)
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	stats, err := batch.Stats(ctx)
	if err != nil {
		return fmt.Errorf("collecting stats: %w", err)
	}
	slog.Info("simulation finished",
		"runs", stats.Runs,
		"wins", stats.Wins,
		"losses", stats.Losses,
		"abandoned", stats.Abandoned,
		"win_rate", fmt.Sprintf("%.1f%%", stats.WinRate()*100),
		"mean_act", fmt.Sprintf("%.2f", stats.MeanActReached))
	return nil
}

// runSeeds returns BaseSeed+i for every run, or fresh random seeds when
// BaseSeed is 0.
func runSeeds(sim config.Simulator) ([]int64, error) {
	seeds := make([]int64, sim.Runs)
	for i := range seeds {
		if sim.BaseSeed != 0 {
			seeds[i] = sim.BaseSeed + int64(i)
			continue
		}
		seed, err := rng.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("generating seed: %w", err)
		}
		seeds[i] = seed
	}
	return seeds, nil
}

func simulateRun(ctx context.Context, opts gamerun.Options, sim config.Simulator, seed int64) (db.RunRecord, error) {
	s := gamerun.NewSession(opts)
	if _, err := s.StartNewRun(sim.Character, seed); err != nil {
		return db.RunRecord{}, err
	}
	st, err := autoplay.Play(ctx, s, autoplay.Greedy{}, sim.MaxTurnsPerCombat)
	if err != nil {
		return db.RunRecord{}, err
	}
	return db.RecordFromSummary(gamerun.Summarize(st))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
