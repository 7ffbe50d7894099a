package config

import (
	_ "embed"
)

//go:embed defaults/starshot.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Speed:        28.0,
			Width:        5,
			Height:       2,
			Lives:        3,
			FireInterval: 0.16,
		},
		Bullet: BulletConfig{
			Speed:    45.0,
			Width:    1,
			Height:   1,
			PoolSize: 40,
		},
		Enemy: EnemyConfig{
			SpeedMin:      4.0,
			SpeedMax:      11.0,
			WidthMin:      2,
			WidthMax:      6,
			PoolSize:      24,
			SpawnInterval: 0.8,
			SpawnStagger:  6.0,
		},
		Stars: StarConfig{
			Count:    60,
			SpeedMin: 1.5,
			SpeedMax: 12.0,
		},
		Scoring: ScoringConfig{
			KillReward: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				SpawnReduction:  0.45,
			},
		},
	}
}
