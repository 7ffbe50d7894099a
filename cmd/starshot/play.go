package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caiigames/starshot/internal/core"
	"github.com/caiigames/starshot/internal/platform/tui"
	"github.com/caiigames/starshot/internal/registry"
	"github.com/caiigames/starshot/internal/shooter"
	"github.com/caiigames/starshot/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space/Up/W - Fire
  P/Esc      - Pause
  F          - Toggle fullscreen
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 5 lives, slow progression
  normal - 3 lives, standard progression
  hard   - 2 lives, fast progression
  fixed  - No progression, stays at the starting level

Examples:
  starshot play
  starshot play --difficulty hard
  starshot play --config ./my-starshot.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("starshot")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagDifficulty)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
