package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duck-tower/internal/platform/harness"
)

var (
	flagListen   string
	flagRealtime bool
	flagWidth    float64
	flagHeight   float64
)

var harnessCmd = &cobra.Command{
	Use:   "harness",
	Short: "Start the websocket test harness",
	Long: `Serve one game to automated test drivers.

Drivers connect to /ws and send JSON commands; every command is answered
with the full game state. GET /state returns the state and GET /schema its
JSON schema.

Commands:
  {"type":"start","seed":"pond"}
  {"type":"key","key":"ArrowLeft"}        ArrowLeft, ArrowRight, Space
  {"type":"pointer","phase":"down","x":200,"y":150}
  {"type":"tick","ticks":60}
  {"type":"retry"} {"type":"continue"} {"type":"menu"} {"type":"state"}
  {"type":"debug","op":"alignWithTop","value":0}

Without --realtime time only moves on tick commands.

Examples:
  ducks harness
  ducks harness --listen :9000 --width 800 --height 600
  ducks harness --realtime --fps 30`,
	Args: cobra.NoArgs,
	Run:  runHarness,
}

func init() {
	harnessCmd.Flags().StringVar(&flagListen, "listen", ":8080", "HTTP address (host:port)")
	harnessCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick the game at --fps")
	harnessCmd.Flags().Float64Var(&flagWidth, "width", 412, "Viewport width in pixels")
	harnessCmd.Flags().Float64Var(&flagHeight, "height", 915, "Viewport height in pixels")
}

func runHarness(_ *cobra.Command, _ []string) {
	ducksCfg, err := loadConfig()
	if err != nil {
		exitf("Error loading config: %v\n", err)
	}

	logger, closer, err := openLogger(os.Stderr, "ducks-harness")
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	cfg := harness.DefaultConfig()
	cfg.Address = flagListen
	cfg.Ducks = ducksCfg
	cfg.Realtime = flagRealtime
	cfg.Runtime.ViewportW = flagWidth
	cfg.Runtime.ViewportH = flagHeight
	cfg.Runtime.TickRate = flagFPS
	cfg.Runtime.Seed = flagSeed

	server, err := harness.NewServer(cfg, logger)
	if err != nil {
		exitf("Error creating harness: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		exitf("Harness error: %v\n", err)
	}
}
