package shooter

import (
	"math/rand"

	"github.com/caiigames/starshot/internal/core"
)

// Player is the ship at the bottom of the playfield. Created once per
// session; losing all lives ends the game but never destroys the player.
type Player struct {
	X          float64 // Left edge, playfield cells
	Y          float64 // Top edge, fixed after Reset/Resize
	W, H       int
	Speed      float64 // Cells per second
	ShootTimer float64 // Seconds until the next shot is allowed
	Lives      int
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, float64(p.W), float64(p.H))
}

// Update applies horizontal movement from held input and counts down the
// shoot cooldown. Position is clamped to the playfield.
func (p *Player) Update(dt float64, in core.InputFrame, fieldW float64) {
	vx := 0.0
	if in.Has(core.ActionLeft) {
		vx -= 1
	}
	if in.Has(core.ActionRight) {
		vx += 1
	}

	p.X += vx * p.Speed * dt
	p.X = core.ClampF(p.X, 0, fieldW-float64(p.W))

	p.ShootTimer -= dt
	if p.ShootTimer < 0 {
		p.ShootTimer = 0
	}
}

// Bullet travels straight up. Bullets live in a fixed pool; "destroyed"
// means deactivated and returned for reuse.
type Bullet struct {
	X, Y   float64
	W, H   int
	Speed  float64 // Cells per second, upward
	active bool
}

// Active reports whether the bullet participates in movement, collision
// and rendering.
func (b *Bullet) Active() bool {
	return b.active
}

// Activate places the bullet at (x, y) and puts it in play.
func (b *Bullet) Activate(x, y float64) {
	b.X = x
	b.Y = y
	b.active = true
}

// Deactivate returns the bullet to its pool.
func (b *Bullet) Deactivate() {
	b.active = false
}

// Rect returns the bullet's collision rectangle.
func (b *Bullet) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, float64(b.W), float64(b.H))
}

// Update moves the bullet upward and deactivates it once its bottom edge
// crosses above the top of the playfield. Inactive bullets never move.
func (b *Bullet) Update(dt float64) {
	if !b.active {
		return
	}
	b.Y -= b.Speed * dt
	if b.Y+float64(b.H) < 0 {
		b.active = false
	}
}

// Enemy falls from above the top edge. Speed and size are re-rolled at
// every spawn; health is 1 in this game.
type Enemy struct {
	X, Y   float64
	W, H   int
	Speed  float64 // Cells per second, downward
	Health int
	active bool
}

// Active reports whether the enemy participates in movement, collision
// and rendering.
func (e *Enemy) Active() bool {
	return e.active
}

// Deactivate removes the enemy from play, returning it to its pool.
func (e *Enemy) Deactivate() {
	e.active = false
}

// Rect returns the enemy's collision rectangle.
func (e *Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, float64(e.W), float64(e.H))
}

// Update moves the enemy downward and deactivates it once its top edge
// passes below the bottom of the playfield.
func (e *Enemy) Update(dt float64, fieldH float64) {
	if !e.active {
		return
	}
	e.Y += e.Speed * dt
	if e.Y > fieldH {
		e.active = false
	}
}

// starShades give the background stars varying apparent depth.
var starShades = []core.Color{
	core.ColorDarkGray,
	core.ColorGray,
	core.ColorWhite,
	core.ColorBrightWhite,
}

// Star is a purely cosmetic background entity. It is never deactivated;
// passing the bottom edge re-randomizes it just above the top.
type Star struct {
	X, Y  float64
	Speed float64 // Cells per second, downward
	Shade core.Color
}

// Reset re-randomizes the star. On initial placement the star can appear
// anywhere on the field; afterwards it re-enters just above the top edge.
func (s *Star) Reset(rng *rand.Rand, fieldW, fieldH, speedMin, speedMax float64, init bool) {
	s.X = rng.Float64() * fieldW
	if init {
		s.Y = rng.Float64() * fieldH
	} else {
		s.Y = -rng.Float64() * 2
	}
	s.Speed = speedMin + rng.Float64()*(speedMax-speedMin)
	s.Shade = starShades[rng.Intn(len(starShades))]
}

// Update drifts the star downward, wrapping it with fresh random
// parameters when it leaves the playfield.
func (s *Star) Update(dt float64, rng *rand.Rand, fieldW, fieldH, speedMin, speedMax float64) {
	s.Y += s.Speed * dt
	if s.Y > fieldH {
		s.Reset(rng, fieldW, fieldH, speedMin, speedMax, false)
	}
}
