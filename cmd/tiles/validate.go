package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/match3"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parse each level file, build its board and deal it once with the
default configuration. Reports every file and fails if any is broken.

Examples:
  tiles validate ./levels/level_5.json
  tiles validate ./levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	cfg := config.DefaultTilesConfig()
	failed := 0

	for _, file := range args {
		swaps, err := checkLevel(file, cfg)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", file, err)
			continue
		}
		fmt.Printf("ok    %s (%d possible swaps on the first deal)\n", file, swaps)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files failed", failed, len(args))
	}
	return nil
}

// checkLevel loads a level and deals it, returning the number of legal
// swaps on the deal.
func checkLevel(file string, cfg config.TilesConfig) (int, error) {
	lvl, err := levels.LoadFile(file)
	if err != nil {
		return 0, err
	}

	board, err := match3.NewBoard(lvl.Layout(), match3.Params{
		Palette:         cfg.Board.Palette,
		BaseScore:       cfg.Board.BaseScore,
		MaxDealAttempts: cfg.Board.MaxDealAttempts,
		Rand:            rand.New(rand.NewSource(flagSeed + 1)),
	})
	if err != nil {
		return 0, err
	}
	if _, err := board.Shuffle(); err != nil {
		return 0, err
	}
	return len(board.PossibleSwaps()), nil
}
