package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

// Game modes whose results are kept in the database.
var scoredModes = []string{"tiles", "tiles_single"}

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 campaign scores, or the top 10 results of one level.

Examples:
  tiles scores
  tiles scores level_2
  tiles scores 3
  tiles scores --tui
  tiles scores --clear`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeScoresArgs,
	RunE:              runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score and level result")
	scoresCmd.MarkFlagsMutuallyExclusive("tui", "clear")
}

func completeScoresArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeLevelIDs(cmd, args, toComplete)
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if len(args) > 0 {
			return fmt.Errorf("--clear removes every score and takes no level")
		}
		return clearScores(out, store)
	}

	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	levelID := ""
	if len(args) == 1 {
		idx, err := resolveLevel(lvls, args[0])
		if err != nil {
			return err
		}
		levelID = lvls[idx].ID
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, lvls, levelID, width, height)
		return err
	}

	if levelID == "" {
		return printCampaignScores(out, store)
	}
	return printLevelScores(out, store, levelID)
}

func clearScores(w io.Writer, store *storage.Store) error {
	for _, mode := range scoredModes {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "All scores cleared.")
	return nil
}

func printCampaignScores(w io.Writer, store *storage.Store) error {
	scores, err := store.TopScores("tiles", 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Campaign")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tiles play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore("tiles"); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	return nil
}

func printLevelScores(w io.Writer, store *storage.Store, levelID string) error {
	results, err := store.TopLevelResults(levelID, 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", levelID)
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No results recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-6s  %s\n", "Rank", "Score", "Moves", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-10d  %-5d  %-6s  %s\n",
			i+1, r.Score, r.MovesUsed, outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetLevelStats(levelID); err == nil && stats != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Played %d, won %.0f%%, best %d\n", stats.Plays, stats.WinRate()*100, stats.BestScore)
	}
	return nil
}
