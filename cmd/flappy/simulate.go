package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/driver"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagTicks    int
	flagRealtime bool
	flagPersist  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a UI",
	Long: `Run a game driven by the built-in autopilot and print the final state.

The run stops at game over or after --ticks ticks. By default it runs as
fast as possible; --realtime paces it at --fps. The best score is kept in
memory unless --persist is given.

Examples:
  flappy simulate
  flappy simulate --seed 42 --ticks 10000
  flappy simulate --realtime --fps 30 --log-level debug
  flappy simulate --persist --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace the simulation at --fps")
	simulateCmd.Flags().BoolVar(&flagPersist, "persist", false, "Load and save the best score in the scores database")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "flappy-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	var best flappy.ScoreStore = flappy.NewMemoryStore(0)
	if flagPersist {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
		persisted := storage.NewBestScore(store, gameCfg.Store.Key)
		logger.Debug("persisting best score", "db", flagDBPath, "key", persisted.Key())
		best = persisted
	}

	engine := flappy.NewEngine(gameCfg,
		flappy.WithStore(best),
		flappy.WithLogger(logger),
		flappy.WithSeed(flagSeed),
	)
	sim := newSimulation(engine, gameCfg, flagTicks)

	if flagRealtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		loop := driver.New(flagFPS, logger)
		logger.Info("pacing simulation", "interval", loop.Interval())
		if err := loop.Run(ctx, sim.step); err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		for sim.step(context.Background(), engine.Ticks()+1) {
		}
	}

	return sim.report(os.Stdout, logger)
}

// simulation drives an engine with the autopilot.
type simulation struct {
	engine   *flappy.Engine
	pilot    flappy.Autopilot
	maxTicks int
	last     flappy.StepResult
}

func newSimulation(engine *flappy.Engine, cfg config.FlappyConfig, maxTicks int) *simulation {
	return &simulation{
		engine:   engine,
		pilot:    flappy.NewAutopilot(cfg),
		maxTicks: maxTicks,
	}
}

// step runs one tick and reports whether the simulation should go on.
func (s *simulation) step(_ context.Context, _ int) bool {
	in := core.NewInputFrame()
	in.Push(s.pilot.Decide(s.engine.Snapshot()))
	s.last = s.engine.Step(in)
	return s.last.Mode == flappy.ModeRunning && s.engine.Ticks() < s.maxTicks
}

// report prints the final snapshot.
func (s *simulation) report(w io.Writer, logger *log.Logger) error {
	snap := s.engine.Snapshot()
	logger.Info("simulation finished", "mode", snap.Mode, "ticks", snap.Tick, "score", snap.Score, "best", snap.Best)

	fmt.Fprintf(w, "seed:      %d\n", s.engine.Seed())
	fmt.Fprintf(w, "mode:      %s\n", snap.Mode)
	fmt.Fprintf(w, "ticks:     %d\n", snap.Tick)
	fmt.Fprintf(w, "score:     %d\n", snap.Score)
	fmt.Fprintf(w, "best:      %d\n", snap.Best)
	fmt.Fprintf(w, "actor:     y=%.1f v=%.1f\n", snap.Actor.Y, snap.Velocity)
	fmt.Fprintf(w, "obstacles: %d\n", len(snap.Obstacles))
	if s.last.Ended() {
		fmt.Fprintf(w, "cause:     %s\n", s.last.Cause)
	}
	return nil
}
