package shooter

// ResolveBulletEnemy runs the bullet-versus-enemy pass: every active
// bullet is tested against active enemies in pool order; on the first
// overlap both are deactivated and scanning stops for that bullet, so a
// bullet kills at most one enemy per frame and the first enemy in pool
// iteration order wins ties. Returns the number of kills.
func ResolveBulletEnemy(bullets *Pool[*Bullet], enemies *Pool[*Enemy]) int {
	kills := 0
	for b := range bullets.ActiveSeq() {
		bRect := b.Rect()
		for _, e := range enemies.Slots() {
			if !e.Active() {
				continue
			}
			if bRect.Intersects(e.Rect()) {
				e.Deactivate()
				b.Deactivate()
				kills++
				break
			}
		}
	}
	return kills
}

// ResolveEnemyPlayer tests every active enemy against the player's
// rectangle, deactivating each one that overlaps. Returns the number of
// hits; multiple enemies overlapping the player in the same frame each
// count, so a single frame can cost several lives.
func ResolveEnemyPlayer(enemies *Pool[*Enemy], player *Player) int {
	hits := 0
	pRect := player.Rect()
	for e := range enemies.ActiveSeq() {
		if e.Rect().Intersects(pRect) {
			e.Deactivate()
			hits++
		}
	}
	return hits
}
