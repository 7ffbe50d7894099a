package shooter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/caiigames/starshot/internal/config"
)

func newTestSpawner(seed int64) (*Spawner, *Pool[*Enemy]) {
	cfg := config.EnemyConfig{
		SpeedMin:      4,
		SpeedMax:      11,
		WidthMin:      2,
		WidthMax:      6,
		PoolSize:      4,
		SpawnInterval: 0.8,
		SpawnStagger:  6,
	}
	diff := config.NewDifficultyManager(config.DifficultyConfig{Enabled: false})
	rng := rand.New(rand.NewSource(seed))
	pool := NewPool(cfg.PoolSize, func() *Enemy { return &Enemy{} })
	return NewSpawner(cfg, rng, diff), pool
}

func TestSpawnerAccumulatesBelowThreshold(t *testing.T) {
	s, pool := newTestSpawner(1)

	// Three frames totalling 0.6s: below the 0.8s interval
	for i := 0; i < 3; i++ {
		s.Update(0.2, pool, 90, 0, 0)
	}

	if pool.CountActive() != 0 {
		t.Errorf("no enemy should spawn before the interval, got %d active", pool.CountActive())
	}
	if math.Abs(s.Accumulated()-0.6) > 1e-9 {
		t.Errorf("Accumulated() = %f, expected 0.6", s.Accumulated())
	}
}

func TestSpawnerSpawnsAtThreshold(t *testing.T) {
	s, pool := newTestSpawner(1)

	s.Update(0.8, pool, 90, 0, 0)

	if pool.CountActive() != 1 {
		t.Fatalf("crossing the interval should spawn exactly one enemy, got %d", pool.CountActive())
	}
	if s.Accumulated() != 0 {
		t.Errorf("accumulator should reset after a spawn, got %f", s.Accumulated())
	}
}

func TestSpawnerSpawnsAtMostOnePerFrame(t *testing.T) {
	s, pool := newTestSpawner(1)

	// A single huge frame covers many intervals but still only spawns once
	s.Update(8.0, pool, 90, 0, 0)

	if pool.CountActive() != 1 {
		t.Errorf("a single frame should spawn at most one enemy, got %d", pool.CountActive())
	}
}

func TestSpawnerEnemyParameters(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, pool := newTestSpawner(seed)
		fieldW := 90.0

		s.Update(0.8, pool, fieldW, 0, 0)

		e := pool.Slots()[0]
		if !e.Active() {
			t.Fatalf("seed %d: enemy should be active", seed)
		}
		if e.W < 2 || e.W > 6 {
			t.Errorf("seed %d: width %d outside [2, 6]", seed, e.W)
		}
		if e.H < 1 {
			t.Errorf("seed %d: height %d below 1", seed, e.H)
		}
		if e.X < 0 || e.X > fieldW-float64(e.W) {
			t.Errorf("seed %d: x %f outside playfield", seed, e.X)
		}
		if e.Y > -float64(e.H) {
			t.Errorf("seed %d: enemy should start above the top edge, y = %f", seed, e.Y)
		}
		if e.Speed < 4 || e.Speed > 11 {
			t.Errorf("seed %d: speed %f outside [4, 11]", seed, e.Speed)
		}
		if e.Health != 1 {
			t.Errorf("seed %d: health = %d, expected 1", seed, e.Health)
		}
	}
}

func TestSpawnerDropsRequestWhenPoolSaturated(t *testing.T) {
	s, pool := newTestSpawner(1)

	for _, e := range pool.Slots() {
		e.active = true
	}

	// The spawn request is silently dropped; no slot is recycled
	s.Update(0.8, pool, 90, 0, 0)

	for i, e := range pool.Slots() {
		if !e.Active() {
			t.Errorf("slot %d should still be active after a dropped spawn", i)
		}
	}
	if s.Accumulated() != 0 {
		t.Errorf("accumulator should reset even on a dropped spawn, got %f", s.Accumulated())
	}
}
