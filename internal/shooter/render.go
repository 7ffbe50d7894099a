package shooter

import (
	"fmt"

	"github.com/caiigames/starshot/internal/core"
)

// Visual characters for rendering
const (
	PlayerNoseChar = '▲'
	PlayerHullChar = '█'
	BulletChar     = '│'
	EnemyChar      = '▓'
	StarChar       = '·'
)

// Render draws the current game state to the screen in a fixed order:
// stars, bullets, enemies, player, HUD, overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderStars(dst)
	g.renderBullets(dst)
	g.renderEnemies(dst)
	g.renderPlayer(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderStars draws the background star field.
func (g *Game) renderStars(dst *core.Screen) {
	for _, s := range g.stars {
		dst.SetCell(int(s.X), int(s.Y), StarChar, s.Shade)
	}
}

// renderBullets draws all active bullets.
func (g *Game) renderBullets(dst *core.Screen) {
	for b := range g.bullets.ActiveSeq() {
		x := int(b.X)
		y := int(b.Y)
		for dy := 0; dy < b.H; dy++ {
			for dx := 0; dx < b.W; dx++ {
				dst.SetCell(x+dx, y+dy, BulletChar, core.ColorBrightYellow)
			}
		}
	}
}

// renderEnemies draws all active enemies.
func (g *Game) renderEnemies(dst *core.Screen) {
	for e := range g.enemies.ActiveSeq() {
		x := int(e.X)
		y := int(e.Y)
		for dy := 0; dy < e.H; dy++ {
			for dx := 0; dx < e.W; dx++ {
				dst.SetCell(x+dx, y+dy, EnemyChar, core.ColorBrightRed)
			}
		}
	}
}

// renderPlayer draws the player ship: a nose cell on the top row, full
// hull rows below.
func (g *Game) renderPlayer(dst *core.Screen) {
	x := int(g.player.X)
	y := int(g.player.Y)

	for dy := 0; dy < g.player.H; dy++ {
		if dy == 0 {
			dst.SetCell(x+g.player.W/2, y, PlayerNoseChar, core.ColorBrightCyan)
			continue
		}
		for dx := 0; dx < g.player.W; dx++ {
			dst.SetCell(x+dx, y+dy, PlayerHullChar, core.ColorBrightCyan)
		}
	}
}

// renderHUD draws the score and lives indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorWhite)

	livesText := fmt.Sprintf("Lives: %d", core.Max(g.player.Lives, 0))
	dst.DrawTextColored(dst.Width()-len(livesText)-1, 0, livesText, core.ColorWhite)
}

// renderOverlay draws game state messages atop the playfield.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to Restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
