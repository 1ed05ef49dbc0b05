// tiles is a match-3 tile puzzle for the terminal.
//
// Usage:
//
//	tiles list               - List campaign levels
//	tiles play               - Pick a level and play
//	tiles serve              - Start SSH server for remote play
//	tiles scores [level]     - Show high scores
//	tiles validate <file>... - Check level files
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible deals
//	--db <path>         - Set database path (default: ~/.tiles/scores.db)
//	--levels <dir>      - Load levels from a directory instead of the built-in campaign
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/tui-tiles/internal/games/tiles"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Tiles - a match-3 puzzle in your terminal",
	Long: `Tiles is a match-3 puzzle played in the terminal. Swap neighbouring
pieces to line up three or more of a kind and reach each level's target
score before the moves run out.

Available commands:
  list      - Show the campaign levels
  play      - Play the campaign or a single level
  serve     - Start SSH server for remote play
  scores    - View high scores
  validate  - Check level files

Examples:
  tiles list
  tiles play
  tiles play --level 3 --difficulty easy
  tiles serve --ssh :2222
  tiles scores level_1`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiles/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
}

// newLogger builds the stderr logger shared by every command.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
		Level:           level,
	}), nil
}

// loadLevels returns the campaign selected by --levels.
func loadLevels() ([]levels.Level, error) {
	lvls, err := levels.Load(flagLevelsDir)
	if err != nil {
		return nil, fmt.Errorf("cannot load levels: %w", err)
	}
	return lvls, nil
}

// levelLoader returns the loader behind --levels.
func levelLoader() *levels.Loader {
	if flagLevelsDir == "" {
		return levels.NewBuiltinLoader()
	}
	return levels.NewLoader(flagLevelsDir)
}

// completeLevelIDs offers level IDs for shell completion.
func completeLevelIDs(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ids, err := levelLoader().ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, toComplete) {
			matches = append(matches, id)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// openStore opens the scores database. Play continues without one, so a
// failure is only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
