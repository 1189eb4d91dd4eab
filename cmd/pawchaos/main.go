// pawchaos is a handheld reaction game played with a rotary encoder, a
// push button and an accelerometer, simulated in the terminal.
//
// Usage:
//
//	pawchaos play            - Play in the terminal
//	pawchaos scores          - Show the high-score table
//	pawchaos serve           - Start SSH server for remote play
//
// Global flags:
//
//	--tick-rate <rate>  - Firmware loop rate (default: 60)
//	--seed <value>      - RNG seed for reproducible prompt order
//	--db <path>         - Scores database path (default: ~/.pawchaos/scores.db)
//	--config <path>     - Controller config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTickRate int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pawchaos",
	Short: "Paw Chaos - a reaction game for your terminal",
	Long: `Paw Chaos is a reaction game: the screen commands an action and you
have less and less time to perform it. Ten stages, three difficulties,
a persistent top-3 high-score table.

The physical controller is a knob you turn and press and a device you
shake or flip; the terminal simulates all of it with key presses.

Available commands:
  play     - Play in the terminal
  scores   - View or clear the high-score table
  serve    - Start SSH server for remote play

Examples:
  pawchaos play
  pawchaos play --mute --tick-rate 30
  pawchaos scores
  pawchaos serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 60, "Firmware loop rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pawchaos/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to controller config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
