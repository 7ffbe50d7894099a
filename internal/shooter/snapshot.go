package shooter

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick          int
	Score         int
	Lives         int
	State         string
	PlayerX       float64
	ShootTimer    float64
	SpawnAccum    float64
	ActiveBullets int
	ActiveEnemies int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tickCount,
		Score:         g.score,
		Lives:         g.player.Lives,
		State:         g.state,
		PlayerX:       g.player.X,
		ShootTimer:    g.player.ShootTimer,
		SpawnAccum:    g.spawner.Accumulated(),
		ActiveBullets: g.bullets.CountActive(),
		ActiveEnemies: g.enemies.CountActive(),
	}
}
