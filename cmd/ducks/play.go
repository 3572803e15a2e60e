package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-tower/internal/games/ducks"
	"github.com/vovakirdan/duck-tower/internal/platform/tui"
	"github.com/vovakirdan/duck-tower/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Duck Tower",
	Long: `Start playing in the terminal.

Type a seed in the menu (or leave it blank for --seed, else a random one)
and press Enter. The same seed always deals the same ducks.

Controls:
  Left/Right, A/D  - Move the hovering duck
  Space/Down       - Drop
  Mouse            - Drag the duck, or click away from it to drop
  Enter            - Continue after a level-up
  R                - Retry the same seed after game over
  Esc/M            - Back to the menu
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wider landing tolerances, slower fall
  normal - Default tuning
  hard   - Tight tolerances, fast fall

Examples:
  ducks play
  ducks play --seed pond
  ducks play --difficulty hard --log ./ducks.log
  ducks play --config ./my-ducks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("Error loading config: %v\n", err)
	}

	// The alt screen owns stdout, so events only go to --log
	logger, closer, err := openLogger(io.Discard, "ducks")
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := terminalSize()
	rc := tui.RuntimeFor(width, height, flagFPS, flagSeed)

	runErr := tui.Run(ducks.New(cfg), store, rc, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("Error running game: %v\n", runErr)
	}
}
