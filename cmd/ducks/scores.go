package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duck-tower/internal/platform/tui"
	"github.com/vovakirdan/duck-tower/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

In a terminal this opens the interactive scoreboard; use --plain (or pipe
the output) for a text listing. With --seed only the best run of that seed
is shown.

Examples:
  ducks scores
  ducks scores --plain --limit 20
  ducks scores --plain --limit 0       # Every recorded run
  ducks scores --seed pond
  ducks scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list (0 lists every run)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("Error opening runs database: %v\n", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			exitf("Error clearing runs: %v\n", err)
		}
		fmt.Println("All runs deleted.")
	case flagSeed != "":
		printBestForSeed(store, flagSeed)
	case flagPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		printTopRuns(store, flagLimit)
	default:
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, width, height); err != nil {
			exitf("Error: %v\n", err)
		}
	}
}

func printBestForSeed(store *storage.Store, seed string) {
	run, err := store.BestRunForSeed(seed)
	if err != nil {
		exitf("Error retrieving runs: %v\n", err)
	}
	if run == nil {
		fmt.Printf("No runs recorded for seed %q.\n", seed)
		fmt.Printf("Play 'ducks play --seed %s' to set the first score!\n", seed)
		return
	}
	fmt.Printf("Best run for seed %q: score %d, level %d (%s)\n",
		seed, run.Score, run.Level, run.CreatedAt.Format("2006-01-02 15:04"))
}

func printTopRuns(store *storage.Store, limit int) {
	var (
		runs []storage.Run
		err  error
	)
	if limit <= 0 {
		runs, err = store.AllRuns()
	} else {
		runs, err = store.TopRuns(limit)
	}
	if err != nil {
		exitf("Error retrieving runs: %v\n", err)
	}

	fmt.Println("High Scores - Duck Tower")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ducks play' to set the first high score!")
		return
	}

	// Calculate seed column width
	seedWidth := 4 // "Seed" header
	for _, r := range runs {
		seedWidth = max(seedWidth, len(r.Seed))
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-*s  %s\n", "Rank", "Score", "Level", seedWidth, "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-*s  %s\n", "----", "-----", "-----", seedWidth, "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-*s  %s\n",
			i+1, r.Score, r.Level, seedWidth, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("%d runs over %d seeds, average score %.1f\n", stats.Runs, stats.Seeds, stats.AvgScore)
	}
}
