package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tiles SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tiles/host_key

Examples:
  tiles serve                           # Listen on :23234 with auto-generated key
  tiles serve --ssh :2222               # Listen on port 2222
  tiles serve --host-key ./my_host_key  # Use specific host key
  tiles serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom tiles config YAML")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	tilesCfg, err := config.LoadTiles(flagServeConfig)
	if err != nil {
		return err
	}
	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Levels = lvls
	cfg.Tiles = tilesCfg
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting tiles SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
