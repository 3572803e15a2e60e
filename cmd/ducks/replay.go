package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-tower/internal/replay"
)

var flagHashOnly bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a scripted game headlessly",
	Long: `Play a YAML script of commands and print the final game state as JSON.

If the script has an expect block and the final state does not match, the
state is still printed and the command exits with status 1.

Script format:
  seed: pond
  viewport: {width: 412, height: 915}
  steps:
    - action: start
    - debug: {op: alignWithTop, value: 0}
    - key: Space
    - tick: 90
  expect: {mode: PLAYING, score: 1}

Examples:
  ducks replay ./scripts/perfect.yaml
  ducks replay ./scripts/perfect.yaml --hash`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHashOnly, "hash", false, "Print only the state hash")
}

func runReplay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("Error loading config: %v\n", err)
	}

	script, err := replay.Load(args[0])
	if err != nil {
		exitf("Error: %v\n", err)
	}

	logger, closer, err := openLogger(os.Stderr, "ducks-replay")
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	runner := replay.NewRunner(cfg)
	if flagLogPath != "" {
		runner.Logger = logger
	}

	state, runErr := runner.Run(script)
	if runErr != nil && !errors.Is(runErr, replay.ErrExpectation) {
		exitf("Error: %v\n", runErr)
	}

	if flagHashOnly {
		fmt.Println(state.Hash())
	} else {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			exitf("Error encoding state: %v\n", err)
		}
		fmt.Println(string(data))
	}

	if runErr != nil {
		exitf("%v\n", runErr)
	}
}
