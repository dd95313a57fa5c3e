package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/apetrov-dev/flappy-tui/internal/config"
	"github.com/apetrov-dev/flappy-tui/internal/core"
	"github.com/apetrov-dev/flappy-tui/internal/platform/tui"
	"github.com/apetrov-dev/flappy-tui/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap
  P/Enter    - Start / restart
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The playfield is fixed-size; warn when the terminal cannot hold it.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Screen.Width || h < cfg.Screen.Height {
			fmt.Fprintf(os.Stderr,
				"Warning: terminal is %dx%d, the playfield needs %dx%d\n",
				w, h, cfg.Screen.Width, cfg.Screen.Height)
		}
	}

	rt := core.DefaultConfig()
	rt.ScreenW = cfg.Screen.Width
	rt.ScreenH = cfg.Screen.Height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
