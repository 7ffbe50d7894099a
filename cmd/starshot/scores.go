package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caiigames/starshot/internal/platform/tui"
	"github.com/caiigames/starshot/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs.

Examples:
  starshot scores
  starshot scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Starshot")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'starshot play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %s\n", "Rank", "Score", "Time", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %s\n", "----", "-----", "----", "----------", "----")

	for i, entry := range runs {
		difficulty := entry.Difficulty
		if difficulty == "" {
			difficulty = "normal"
		}
		total := int(entry.Duration)
		fmt.Printf("  %-4d  %-10d  %3d:%02d    %-10s  %s\n",
			i+1, entry.Score, total/60, total%60,
			difficulty, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
