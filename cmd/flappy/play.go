package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Bird",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W  - Start, flap, restart
  Enter       - Start
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml
  flappy play --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game; logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	opts := tui.Options{
		Game:    gameCfg,
		Runtime: rt,
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score database, best score kept in memory", "err", err)
	} else {
		defer store.Close()
		best := storage.NewBestScore(store, gameCfg.Store.Key)
		logger.Debug("best score", "db", flagDBPath, "key", best.Key())
		opts.Best = best
		opts.History = store
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
