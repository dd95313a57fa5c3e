package game

// Obstacle is a vertical wall at a fixed world column with a passable gap
// centered at GapY of height Size.
type Obstacle struct {
	X    int // world column, fixed at creation
	GapY int // gap center
	Size int // gap height, always > 0
}

// GapTop returns the first row of the gap band.
func (o Obstacle) GapTop() int {
	return o.GapY - o.Size/2
}

// GapBottom returns the last row of the gap band.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.Size/2
}

// Hits reports whether the player collides with this obstacle. Collision
// happens only at the exact world column of the wall; since the player
// advances one column per physics tick, each obstacle is visited at most
// once and can never be skipped over.
func (o Obstacle) Hits(p *Player) bool {
	px, py := p.Position()
	if px != o.X {
		return false
	}
	return py < o.GapTop() || py > o.GapBottom()
}

// ScreenX returns the screen column of this obstacle relative to the
// player's world position.
func (o Obstacle) ScreenX(playerX int) int {
	return o.X - playerX
}
