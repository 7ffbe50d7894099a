package shooter

import (
	"strings"
	"testing"

	"github.com/caiigames/starshot/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  90,
		ScreenH:  28,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

// disableSpawning pushes the spawn interval out of reach so tests can
// control exactly which enemies exist.
func disableSpawning(g *Game) {
	g.spawner.cfg.SpawnInterval = 1e9
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestPlayerStaysInPlayfield(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	maxX := g.fieldW() - float64(g.player.W)

	// Drive hard right, then hard left, with oversized frames
	for i := 0; i < 200; i++ {
		g.Step(0.1, inputWith(core.ActionRight))
		if g.player.X < 0 || g.player.X > maxX {
			t.Fatalf("player x = %f outside [0, %f]", g.player.X, maxX)
		}
	}
	if g.player.X != maxX {
		t.Errorf("player should be pinned to the right edge, x = %f", g.player.X)
	}

	for i := 0; i < 200; i++ {
		g.Step(0.1, inputWith(core.ActionLeft))
		if g.player.X < 0 || g.player.X > maxX {
			t.Fatalf("player x = %f outside [0, %f]", g.player.X, maxX)
		}
	}
	if g.player.X != 0 {
		t.Errorf("player should be pinned to the left edge, x = %f", g.player.X)
	}
}

func TestBulletDeactivatesOnceOffTop(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	g.Step(0.016, inputWith(core.ActionFire))
	if g.bullets.CountActive() != 1 {
		t.Fatalf("expected 1 active bullet after firing, got %d", g.bullets.CountActive())
	}

	b := g.bullets.Slots()[0]
	deactivations := 0
	wasActive := b.Active()

	for i := 0; i < 100; i++ {
		g.Step(0.05, core.NewInputFrame())
		if wasActive && !b.Active() {
			deactivations++
		}
		wasActive = b.Active()
	}

	if deactivations != 1 {
		t.Errorf("bullet deactivated %d times, expected exactly once", deactivations)
	}

	// Inactive bullets never move
	yAfter := b.Y
	for i := 0; i < 10; i++ {
		g.Step(0.05, core.NewInputFrame())
	}
	if b.Y != yAfter {
		t.Errorf("inactive bullet moved from %f to %f", yAfter, b.Y)
	}
}

func TestFireRateCap(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	// Two fire frames 0.05s apart with a 0.16s interval: one bullet
	g.Step(0.05, inputWith(core.ActionFire))
	g.Step(0.05, inputWith(core.ActionFire))

	if g.bullets.CountActive() != 1 {
		t.Errorf("two shots within the fire interval should yield 1 bullet, got %d",
			g.bullets.CountActive())
	}

	// Once the interval elapses the next held-fire frame shoots again
	g.Step(0.2, inputWith(core.ActionFire))
	if g.bullets.CountActive() != 2 {
		t.Errorf("expected a second bullet after the interval, got %d", g.bullets.CountActive())
	}
}

func TestBulletEnemyCollisionScores(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	b := g.bullets.Acquire()
	b.Activate(44, 10)
	activateEnemy(g.enemies.Slots()[0], 43, 9, 4, 2)

	g.Step(0.001, core.NewInputFrame())

	if b.Active() {
		t.Error("bullet should be deactivated")
	}
	if g.enemies.Slots()[0].Active() {
		t.Error("enemy should be deactivated")
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
}

func TestLivesGameOverAndRestart(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	// Three separate frames, one enemy-player collision each
	for hit := 1; hit <= 3; hit++ {
		activateEnemy(g.enemies.Slots()[0], g.player.X, g.player.Y, 3, 2)
		g.Step(0.001, core.NewInputFrame())

		if g.enemies.Slots()[0].Active() {
			t.Fatalf("hit %d: colliding enemy should be deactivated", hit)
		}
		if g.player.Lives != 3-hit {
			t.Fatalf("hit %d: lives = %d, expected %d", hit, g.player.Lives, 3-hit)
		}
	}

	if g.state != StateGameOver {
		t.Fatal("game should be over after the third hit")
	}

	// Game over freezes gameplay until restart
	x := g.player.X
	g.Step(0.1, inputWith(core.ActionRight, core.ActionFire))
	if g.player.X != x || g.bullets.CountActive() != 0 {
		t.Error("no gameplay updates should happen while game over")
	}

	// Restart is a full reset
	g.Step(0.016, inputWith(core.ActionRestart))

	if g.state != StatePlaying {
		t.Error("restart should return to playing state")
	}
	if g.player.Lives != 3 {
		t.Errorf("restart should restore lives to 3, got %d", g.player.Lives)
	}
	if g.score != 0 {
		t.Errorf("restart should clear score, got %d", g.score)
	}
	if g.tickCount != 0 {
		t.Errorf("restart should clear tick count, got %d", g.tickCount)
	}
	if g.bullets.CountActive() != 0 || g.enemies.CountActive() != 0 {
		t.Error("restart should leave all pools fully inactive")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	// Get some state in motion
	g.Step(0.016, inputWith(core.ActionFire))
	activateEnemy(g.enemies.Slots()[0], 20, 5, 3, 2)
	g.enemies.Slots()[0].Speed = 8

	g.Step(0.016, inputWith(core.ActionPause))
	if g.state != StatePaused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	enemyY := g.enemies.Slots()[0].Y

	// Any input while paused changes nothing
	for i := 0; i < 20; i++ {
		g.Step(0.1, inputWith(core.ActionLeft, core.ActionFire))
	}

	if g.Snapshot() != before {
		t.Errorf("paused updates changed state:\nbefore %+v\nafter  %+v", before, g.Snapshot())
	}
	if g.enemies.Slots()[0].Y != enemyY {
		t.Error("enemy moved while paused")
	}

	// Unpause resumes the simulation
	g.Step(0.016, inputWith(core.ActionPause))
	g.Step(0.1, core.NewInputFrame())
	if g.enemies.Slots()[0].Y == enemyY {
		t.Error("enemy should move again after unpausing")
	}
}

func TestBulletPoolOverflowRecyclesSlotZero(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	// Shrink the bullet pool to capacity 2
	g.bullets = NewPool(2, func() *Bullet {
		return &Bullet{W: 1, H: 1, Speed: 45}
	})

	first := g.bullets.Slots()[0]

	// Three shots, each with the cooldown fully elapsed
	g.Step(0.2, inputWith(core.ActionFire))
	g.Step(0.2, inputWith(core.ActionFire))

	yBefore := first.Y

	g.Step(0.2, inputWith(core.ActionFire))

	// The third shot succeeded by recycling slot 0 rather than failing
	if g.bullets.CountActive() != 2 {
		t.Errorf("active bullets = %d, expected 2", g.bullets.CountActive())
	}
	if first.Y <= yBefore {
		t.Error("slot 0 bullet should have been teleported back to the muzzle")
	}
}

func TestGameDeterminism(t *testing.T) {
	seed := int64(12345)

	run := func() Snapshot {
		g := newTestGame(seed)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			in.Set(core.ActionFire)
			if i%120 < 60 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			g.Step(1.0/60.0, in)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1 != s2 {
		t.Errorf("determinism failed:\nrun1 %+v\nrun2 %+v", s1, s2)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 200; i++ {
		g.Step(1.0/60.0, inputWith(core.ActionFire))
	}

	g.Reset(g.runtime)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.state != StatePlaying {
		t.Errorf("Reset should return to playing state, got %q", g.state)
	}
	if g.bullets.CountActive() != 0 || g.enemies.CountActive() != 0 {
		t.Error("Reset should leave all pools fully inactive")
	}
	if g.spawner.Accumulated() != 0 {
		t.Error("Reset should clear the spawn accumulator")
	}
}

func TestResizeReanchorsPlayer(t *testing.T) {
	g := newTestGame(1)
	disableSpawning(g)

	// Pin the player to the right edge, then shrink the playfield
	for i := 0; i < 100; i++ {
		g.Step(0.1, inputWith(core.ActionRight))
	}

	smaller := g.runtime
	smaller.ScreenW = 60
	smaller.ScreenH = 20
	g.Resize(smaller)

	if g.player.Y != float64(20-g.player.H-1) {
		t.Errorf("player y = %f, expected re-anchor to the new bottom edge", g.player.Y)
	}
	if g.player.X > 60-float64(g.player.W) {
		t.Errorf("player x = %f should be clamped into the new playfield", g.player.X)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)

	screen := core.NewScreen(90, 28)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD should show the score, row 0 = %q", hud)
	}
	if !strings.Contains(hud, "Lives: 3") {
		t.Errorf("HUD should show lives, row 0 = %q", hud)
	}

	// Pause overlay
	g.Step(0.016, inputWith(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused render should include the PAUSED overlay")
	}
}
