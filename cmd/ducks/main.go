// ducks is the duck tower stacking game for the terminal.
//
// Usage:
//
//	ducks play                  - Play in the terminal
//	ducks serve                 - Start SSH server for remote play
//	ducks harness               - Start the websocket test harness
//	ducks scores                - Show the best runs
//	ducks replay <script.yaml>  - Run a scripted game headlessly
//	ducks schema                - Print the JSON schema of the game state
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Seed used when none is typed in (default: random)
//	--db <path>           - Set database path (default: ~/.ducks/ducks.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Write game events to a log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       string
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ducks",
	Short: "Duck Tower - stack ducks in your terminal",
	Long: `Duck Tower is a stacking game: drop ducks onto a growing tower,
land them close for a perfect, and merge every five landings into a
wider base until the level is complete.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  harness  - Start the websocket test harness
  scores   - View the best runs
  replay   - Run a scripted game headlessly
  schema   - Print the JSON schema of the game state

Examples:
  ducks play
  ducks play --seed pond --difficulty easy
  ducks serve --ssh :2222
  ducks harness --listen :8080
  ducks replay ./scripts/perfect.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Seed used when none is typed in (empty = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(harnessCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(schemaCmd)
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.DucksConfig, error) {
	cfg, err := config.LoadDucks(flagConfig)
	if err != nil {
		return config.DucksConfig{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.DucksConfig{}, err
	}
	config.ApplyDucksPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.DucksConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// openLogger returns a logger writing to --log, or to fallback if unset.
// The returned closer must be closed when done.
func openLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	level := log.InfoLevel

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = f
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
