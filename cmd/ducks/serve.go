package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-tower/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Duck Tower SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Runs are stored per-server
(all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ducks/host_key

Examples:
  ducks serve                           # Listen on :23234 with auto-generated key
  ducks serve --ssh :2222               # Listen on port 2222
  ducks serve --host-key ./my_host_key  # Use specific host key
  ducks serve --db ./ducks.db           # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	ducksCfg, err := loadConfig()
	if err != nil {
		exitf("Error loading config: %v\n", err)
	}

	logger, closer, err := openLogger(os.Stderr, "ducks-ssh")
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Ducks = ducksCfg

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		exitf("Error creating server: %v\n", err)
	}

	logger.Info("connect with ssh", "address", cfg.Address)

	if err := server.ListenAndServe(); err != nil {
		exitf("Server error: %v\n", err)
	}
}
