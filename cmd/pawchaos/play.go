package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paw-chaos/internal/config"
	"github.com/vovakirdan/paw-chaos/internal/game"
	"github.com/vovakirdan/paw-chaos/internal/platform/tui"
	"github.com/vovakirdan/paw-chaos/internal/score"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game with simulated controls.

Controls:
  ←/a  →/d   - Turn the knob (TAIL LEFT / TAIL RIGHT, menus)
  Space      - Press the knob (PAW, confirm)
  S          - Shake the device (SHAKE)
  F          - Flip the device upside down (FLIP)
  Q/Ctrl+C   - Quit

Examples:
  pawchaos play
  pawchaos play --mute
  pawchaos play --config ./my-controller.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable buzzer audio")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: pawchaos play needs an interactive terminal")
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pawchaos"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage; fall back to a volatile table so the game still
	// runs when the database is unavailable.
	var table game.ScoreTable
	store, err := score.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not persist", "error", err)
		table = score.NewMemory()
	} else {
		table = store
		defer store.Close()
	}

	// The buzzer is optional: a machine without an audio device just
	// plays silently.
	var buzzer tui.Buzzer = tui.NopBuzzer{}
	if !flagMute {
		if b, audioErr := tui.NewBeepBuzzer(); audioErr != nil {
			logger.Warn("audio unavailable, playing muted", "error", audioErr)
		} else {
			buzzer = b
			defer b.Close()
		}
	}

	if runErr := tui.Run(cfg, table, buzzer, logger, flagTickRate, flagSeed); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
