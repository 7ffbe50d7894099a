package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in character cells
	ScreenH  int   // Playfield height in character cells
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  90,
		ScreenH:  28,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates game status to the platform after each frame.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining player lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
