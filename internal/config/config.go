// Package config provides YAML-based gameplay configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all gameplay tuning for the shooter.
type ShooterConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Stars      StarConfig       `yaml:"stars"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`         // Horizontal speed in cells per second
	Width        int     `yaml:"width"`         // Hitbox width in cells
	Height       int     `yaml:"height"`        // Hitbox height in cells
	Lives        int     `yaml:"lives"`         // Starting lives
	FireInterval float64 `yaml:"fire_interval"` // Minimum seconds between shots
}

// BulletConfig defines bullet parameters and pool capacity.
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`     // Upward speed in cells per second
	Width    int     `yaml:"width"`     // Hitbox width in cells
	Height   int     `yaml:"height"`    // Hitbox height in cells
	PoolSize int     `yaml:"pool_size"` // Hard cap on concurrently active bullets
}

// EnemyConfig defines enemy parameters, spawn pacing and pool capacity.
type EnemyConfig struct {
	SpeedMin      float64 `yaml:"speed_min"`      // Minimum downward speed, cells per second
	SpeedMax      float64 `yaml:"speed_max"`      // Maximum downward speed, cells per second
	WidthMin      int     `yaml:"width_min"`      // Minimum width in cells
	WidthMax      int     `yaml:"width_max"`      // Maximum width in cells
	PoolSize      int     `yaml:"pool_size"`      // Hard cap on concurrently active enemies
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawn attempts
	SpawnStagger  float64 `yaml:"spawn_stagger"`  // Max extra rows above the top edge at spawn
}

// StarConfig defines the decorative background star field.
type StarConfig struct {
	Count    int     `yaml:"count"`     // Number of stars
	SpeedMin float64 `yaml:"speed_min"` // Minimum drift speed, cells per second
	SpeedMax float64 `yaml:"speed_max"` // Maximum drift speed, cells per second
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	KillReward int `yaml:"kill_reward"` // Points per destroyed enemy
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
