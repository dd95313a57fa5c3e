// flappy is a terminal flappy-bird game with an SSH multiplexer.
//
// Usage:
//
//	flappy                  - Play in the current terminal
//	flappy play             - Same as above
//	flappy scores           - Show the play history
//	flappy serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle layouts
//	--db <path>     - Set database path (default: ~/.flappy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - dodge the walls in your terminal",
	Long: `Flappy is a terminal reflex game. Tap space to keep the bird
in the air and steer it through the gaps in the oncoming walls.

Available commands:
  play     - Play in the current terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the play history

Examples:
  flappy
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy scores --top 20`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
