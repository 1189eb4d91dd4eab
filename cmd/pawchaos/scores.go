package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paw-chaos/internal/score"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top-3 high scores.

Examples:
  pawchaos scores
  pawchaos scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all high scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := score.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High scores cleared.")
		return
	}

	entries := store.Entries()

	fmt.Println("High Scores - Paw Chaos")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pawchaos play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Initials", "Score")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "--------", "-----")
	for i, entry := range entries {
		fmt.Printf("  %-4d  %-8s  %d\n", i+1, entry.Initials, entry.Score)
	}
}
