// Package shooter implements a fixed-pool vertical arcade shooter.
// The player ship moves along the bottom edge, bullets travel up, enemies
// fall from above the top edge, and a decorative star field drifts behind
// everything. All state lives in fixed-capacity pools reused across the
// session; nothing is allocated per frame.
package shooter

import (
	"math/rand"

	"github.com/caiigames/starshot/internal/config"
	"github.com/caiigames/starshot/internal/core"
	"github.com/caiigames/starshot/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the shooter game logic.
type Game struct {
	// Game objects
	player  *Player
	bullets *Pool[*Bullet]
	enemies *Pool[*Enemy]
	stars   []*Star
	spawner *Spawner
	rng     *rand.Rand

	// Game state
	state     string
	score     int
	tickCount int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "starshot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starshot"
}

// Reset initializes or restarts the game. This is a full rebuild of the
// gameplay state: new player, all pools inactive, score zero, timers
// zero. Long-lived platform resources are untouched.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Initialize game state
	g.score = 0
	g.tickCount = 0
	g.state = StatePlaying

	// Player centered at the bottom edge
	g.player = &Player{
		X:     float64(runtime.ScreenW-cfg.Player.Width) / 2,
		Y:     float64(runtime.ScreenH - cfg.Player.Height - 1),
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Speed: cfg.Player.Speed,
		Lives: cfg.Player.Lives,
	}

	// Pools are allocated once; entities start inactive
	g.bullets = NewPool(cfg.Bullet.PoolSize, func() *Bullet {
		return &Bullet{
			W:     cfg.Bullet.Width,
			H:     cfg.Bullet.Height,
			Speed: cfg.Bullet.Speed,
		}
	})
	g.enemies = NewPool(cfg.Enemy.PoolSize, func() *Enemy {
		return &Enemy{}
	})

	// Star field covers the whole playfield at start
	g.stars = make([]*Star, cfg.Stars.Count)
	for i := range g.stars {
		s := &Star{}
		s.Reset(g.rng, g.fieldW(), g.fieldH(), cfg.Stars.SpeedMin, cfg.Stars.SpeedMax, true)
		g.stars[i] = s
	}

	g.spawner = NewSpawner(cfg.Enemy, g.rng, g.difficulty)
}

// fieldW returns the playfield width in cells.
func (g *Game) fieldW() float64 {
	return float64(g.runtime.ScreenW)
}

// fieldH returns the playfield height in cells.
func (g *Game) fieldH() float64 {
	return float64(g.runtime.ScreenH)
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	if dt < 0 {
		dt = 0
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	// Paused and game over short-circuit the whole update: no movement,
	// spawning, collision, or timer progress. Rendering is unaffected.
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Movement and cooldown
	g.player.Update(dt, in, g.fieldW())

	// Shooting: level-triggered fire input gated by the cooldown timer,
	// capping fire rate independent of frame rate or key repeat
	if in.Has(core.ActionFire) && g.player.ShootTimer <= 0 {
		g.player.ShootTimer = g.cfg.Player.FireInterval
		g.fire()
	}

	// Update bullets
	for _, b := range g.bullets.Slots() {
		b.Update(dt)
	}

	// Update enemies
	for _, e := range g.enemies.Slots() {
		e.Update(dt, g.fieldH())
	}

	// Update star field
	for _, s := range g.stars {
		s.Update(dt, g.rng, g.fieldW(), g.fieldH(), g.cfg.Stars.SpeedMin, g.cfg.Stars.SpeedMax)
	}

	// Spawn enemies
	g.spawner.Update(dt, g.enemies, g.fieldW(), g.score, g.tickCount)

	// Collisions run after movement
	kills := ResolveBulletEnemy(g.bullets, g.enemies)
	g.score += kills * g.cfg.Scoring.KillReward

	hits := ResolveEnemyPlayer(g.enemies, g.player)
	if hits > 0 {
		g.player.Lives -= hits
		if g.player.Lives <= 0 {
			g.state = StateGameOver
		}
	}

	return core.StepResult{State: g.State()}
}

// fire activates one bullet at the player's horizontal center, just
// above the player's top edge. Pool exhaustion recycles slot 0, which
// can teleport an in-flight bullet back to the muzzle.
func (g *Game) fire() {
	b := g.bullets.Acquire()
	x := g.player.Rect().CenterX() - float64(b.W)/2
	y := g.player.Y - float64(b.H)
	b.Activate(x, y)
}

// Resize adapts the game to a new playfield size without resetting
// gameplay: the player is re-anchored to the bottom edge and live
// entities are clamped into the new bounds.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	if g.player != nil {
		g.player.Y = float64(runtime.ScreenH - g.player.H - 1)
		g.player.X = core.ClampF(g.player.X, 0, g.fieldW()-float64(g.player.W))
	}

	if g.enemies != nil {
		for e := range g.enemies.ActiveSeq() {
			maxX := g.fieldW() - float64(e.W)
			if maxX < 0 {
				maxX = 0
			}
			e.X = core.ClampF(e.X, 0, maxX)
		}
	}

	for _, s := range g.stars {
		if s.X >= g.fieldW() {
			s.X = g.rng.Float64() * g.fieldW()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	lives := 0
	if g.player != nil {
		lives = core.Max(g.player.Lives, 0)
	}
	return core.GameState{
		Score:    g.score,
		Lives:    lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("starshot", func() registry.Game {
		return New()
	})
}
