package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and top runs",
	Long: `Display the best score and the top runs.

In an interactive terminal the runs are shown in a scrollable table;
when output is piped they are printed as plain text. --clear deletes the
run history but keeps the best score.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --all | head
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print in plain-text mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Print every recorded run in plain-text mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		return clearScores(os.Stdout, store)
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameCfg.Store.Key, width, height)
	}

	limit := flagScoresLimit
	if flagScoresAll {
		limit = 0
	}
	return printScores(os.Stdout, store, gameCfg.Store.Key, limit)
}

// clearScores deletes the run history and reports how many runs went.
func clearScores(w io.Writer, store *storage.Store) error {
	stats, err := store.GetGameStats(tui.GameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	if err := store.ClearScores(tui.GameID); err != nil {
		return fmt.Errorf("error clearing scores: %w", err)
	}
	fmt.Fprintf(w, "Deleted %d runs. The best score is kept.\n", stats.GamesCount)
	return nil
}

// printScores writes the best score, the history stats and the top runs as
// plain text. A limit of 0 or less prints every run.
func printScores(w io.Writer, store *storage.Store, bestKey string, limit int) error {
	best, err := store.LoadBest(bestKey)
	if err != nil {
		return fmt.Errorf("error retrieving best score: %w", err)
	}
	stats, err := store.GetGameStats(tui.GameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	var scores []storage.ScoreEntry
	if limit > 0 {
		scores, err = store.TopScores(tui.GameID, limit)
	} else {
		scores, err = store.AllScores(tui.GameID)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Flappy Bird")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d\n", best)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Fprintf(w, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, dateStr, entry.RunID)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d (best recorded run: %d)\n", best, stats.HighScore)
	fmt.Fprintln(w, tui.FormatStats(*stats))
	return nil
}
