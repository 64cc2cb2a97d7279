package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mysterious-jump/internal/platform/tui"
	"github.com/vovakirdan/mysterious-jump/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the stored high scores.

Opens an interactive table by default; --plain prints the top entries
instead, which also works when stdout is not a terminal.

Examples:
  jump scores
  jump scores --plain --limit 5
  jump scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "jump")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All scores deleted.")
		return nil
	}

	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	if !flagPlain && isTerm {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	printScores(cmd, scores)
	return nil
}

// printScores writes a plain text highscore listing.
func printScores(cmd *cobra.Command, scores []storage.ScoreEntry) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "High Scores - Mysterious Jump")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'jump play' to set the first high score!")
		return
	}

	nameW := len("Name")
	for _, s := range scores {
		nameW = max(nameW, len([]rune(s.Name)))
	}

	fmt.Fprintf(out, "  %-4s  %-*s  %-10s  %s\n", "Rank", nameW, "Name", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-*s  %-10s  %s\n", "----", nameW, "----", "-----", "----")
	for i, s := range scores {
		fmt.Fprintf(out, "  %-4d  %-*s  %-10d  %s\n", i+1, nameW, s.Name, s.Score, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %s with %d\n", scores[0].Name, scores[0].Score)
}
