package shooter

import (
	"math/rand"

	"github.com/caiigames/starshot/internal/config"
)

// Spawner decides, once per frame, whether a new enemy should appear.
// It accumulates elapsed time and requests one enemy activation each
// time the accumulator crosses the spawn interval. The interval itself
// comes from the difficulty manager, so spawns accelerate as the score
// grows.
type Spawner struct {
	accumulator float64
	cfg         config.EnemyConfig
	rng         *rand.Rand
	difficulty  *config.DifficultyManager
}

// NewSpawner creates a spawner drawing randomness from rng.
func NewSpawner(cfg config.EnemyConfig, rng *rand.Rand, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		cfg:        cfg,
		rng:        rng,
		difficulty: diff,
	}
}

// Reset clears the spawn accumulator.
func (s *Spawner) Reset() {
	s.accumulator = 0
}

// Accumulated returns the seconds accumulated since the last spawn attempt.
func (s *Spawner) Accumulated() float64 {
	return s.accumulator
}

// Update advances the accumulator by dt and spawns at most one enemy
// per frame. If the pool is saturated the request is silently dropped;
// there is no forced recycle on this path.
func (s *Spawner) Update(dt float64, pool *Pool[*Enemy], fieldW float64, score, ticks int) {
	s.accumulator += dt

	interval := s.difficulty.SpawnInterval(s.cfg.SpawnInterval, score, ticks)
	if s.accumulator < interval {
		return
	}
	s.accumulator = 0

	s.spawn(pool, fieldW, score, ticks)
}

// spawn activates one enemy from the pool with a fresh random position,
// size and speed. The start height sits above the top edge with a random
// extra offset so spawns are visually staggered.
func (s *Spawner) spawn(pool *Pool[*Enemy], fieldW float64, score, ticks int) {
	e, ok := pool.TryAcquire()
	if !ok {
		return
	}

	w := s.cfg.WidthMin
	if s.cfg.WidthMax > s.cfg.WidthMin {
		w += s.rng.Intn(s.cfg.WidthMax - s.cfg.WidthMin + 1)
	}
	h := w / 2
	if h < 1 {
		h = 1
	}

	maxX := fieldW - float64(w)
	if maxX < 0 {
		maxX = 0
	}

	e.W = w
	e.H = h
	e.X = s.rng.Float64() * maxX
	e.Y = -float64(h) - s.rng.Float64()*s.cfg.SpawnStagger

	baseSpeed := s.cfg.SpeedMin + s.rng.Float64()*(s.cfg.SpeedMax-s.cfg.SpeedMin)
	e.Speed = s.difficulty.Speed(baseSpeed, score, ticks)
	e.Health = 1
	e.active = true
}
