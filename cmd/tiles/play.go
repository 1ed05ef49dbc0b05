package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/registry"
)

var (
	flagLevel      string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign or a single level",
	Long: `Start the tile puzzle. Without --level a menu offers the campaign, a
single level or the scoreboard; with --level that level starts directly.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select a piece; then an arrow swaps it with its neighbour
  H            - Show a possible swap
  B/Esc        - Drop the selection (back to menu once the game is over)
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five piece types and five extra moves per level
  normal - Six piece types
  hard   - Six piece types and three fewer moves per level

Examples:
  tiles play
  tiles play --level 2
  tiles play --level level_3 --difficulty hard
  tiles play --config ./my-tiles.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level to play, by number (1-based) or ID")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tiles config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cobra.CheckErr(playCmd.RegisterFlagCompletionFunc("level", completeLevelIDs))
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	tilesCfg, err := config.LoadTiles(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyTilesPreset(&tilesCfg, preset)
	}

	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if flagLevel == "" {
		return tui.RunSession(tui.SessionOptions{
			Levels: lvls,
			Tiles:  tilesCfg,
			Store:  store,
			Logger: logger,
		}, cfg)
	}

	start, err := resolveLevel(lvls, flagLevel)
	if err != nil {
		return err
	}
	game, err := registry.Create("tiles_single", registry.Options{
		Levels:     lvls,
		Config:     tilesCfg,
		StartLevel: start,
	})
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	logger.Debug("starting level", "level", lvls[start].ID, "difficulty", flagDifficulty)
	return tui.Run(game, store, logger, cfg)
}

// resolveLevel finds a level by ID or by its 1-based number.
func resolveLevel(lvls []levels.Level, s string) (int, error) {
	i, err := levels.IndexByID(lvls, s)
	if err == nil {
		return i, nil
	}
	if n, convErr := strconv.Atoi(s); convErr == nil {
		if n < 1 || n > len(lvls) {
			return 0, fmt.Errorf("level %d outside 1..%d", n, len(lvls))
		}
		return n - 1, nil
	}
	return 0, err
}
