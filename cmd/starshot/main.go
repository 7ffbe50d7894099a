// starshot is a terminal arcade shooter: pilot a ship along the bottom
// of the screen, shoot down falling enemies, and survive as long as you can.
//
// Usage:
//
//	starshot play            - Play the game
//	starshot scores          - Show high scores
//	starshot serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starshot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/caiigames/starshot/internal/shooter"
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
	Use:   "starshot",
	Short: "Starshot - A fast arcade shooter in your terminal",
	Long: `Starshot is a terminal arcade shooter. Move along the bottom of
the screen, shoot down falling enemies, and survive as long as you can.

Available commands:
  play     - Start a game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  starshot play
  starshot play --difficulty hard
  starshot scores
  starshot serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starshot/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
