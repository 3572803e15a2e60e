package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-tower/internal/platform/harness"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the game state",
	Long: `Print the JSON schema of the state snapshot sent by the harness and
printed by replay.

Examples:
  ducks schema
  ducks schema --out ./docs/state.schema.json`,
	Args: cobra.NoArgs,
	Run:  runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Write the schema to this file instead of stdout")
}

func runSchema(_ *cobra.Command, _ []string) {
	data, err := harness.SchemaJSON()
	if err != nil {
		exitf("Error: %v\n", err)
	}

	if flagSchemaOut == "" {
		os.Stdout.Write(data)
		return
	}

	if err := os.MkdirAll(filepath.Dir(flagSchemaOut), 0o755); err != nil {
		exitf("Error creating output dir: %v\n", err)
	}
	if err := os.WriteFile(flagSchemaOut, data, 0o644); err != nil {
		exitf("Error writing schema: %v\n", err)
	}
}
