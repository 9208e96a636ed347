package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Player is the token the user steers. Its centre always rests on a cell
// centre between ticks; every move is exactly one cell.
type Player struct {
	X, Y   float64 // Centre in playfield units
	Radius float64
	spawnX float64
	spawnY float64
}

// NewPlayer places a player at the centre of the spawn cell.
func NewPlayer(g *Grid, spawnCol, spawnRow int, radius float64) *Player {
	x, y := g.CellCenter(spawnCol, spawnRow)
	return &Player{X: x, Y: y, Radius: radius, spawnX: x, spawnY: y}
}

// Circle returns the player's collision bounds.
func (p *Player) Circle() core.Circle {
	return core.NewCircle(p.X, p.Y, p.Radius)
}

// Respawn moves the player back to the spawn coordinate.
func (p *Player) Respawn() {
	p.X, p.Y = p.spawnX, p.spawnY
}

// Cell returns the grid cell under the player's centre.
func (p *Player) Cell(g *Grid) (col, row int) {
	return g.CellOf(p.X, p.Y)
}

// IsBlocked reports whether a one-cell move in d is illegal from the current
// position. The playfield boundary wins over occupancy: a token on the edge
// is blocked outward even when the clamped neighbour is free.
func (p *Player) IsBlocked(g *Grid, d Direction) bool {
	half := g.CellSize() / 2
	minX, minY := half, half
	maxX, maxY := g.Width()-half, g.Height()-half

	switch d {
	case DirUp:
		if p.Y <= minY {
			return true
		}
	case DirDown:
		if p.Y >= maxY {
			return true
		}
	case DirLeft:
		if p.X <= minX {
			return true
		}
	case DirRight:
		if p.X >= maxX {
			return true
		}
	default:
		return true
	}

	col, row := p.Cell(g)
	return g.Neighbor(col, row, d) > 0
}

// AttemptMove moves one cell in d unless the move is blocked.
// It reports whether the player moved.
func (p *Player) AttemptMove(g *Grid, d Direction) bool {
	if p.IsBlocked(g, d) {
		return false
	}
	p.step(g, d)
	return true
}

// ApplyMoves applies every direction edge in the frame. Legality is decided
// for all directions against the position at the start of the call, then the
// legal steps are applied together, so two edges in one tick can combine into
// a diagonal step. It returns the directions that were applied.
func (p *Player) ApplyMoves(g *Grid, in core.InputFrame) []Direction {
	var legal []Direction
	for _, d := range Directions {
		if in.Has(d.Action()) && !p.IsBlocked(g, d) {
			legal = append(legal, d)
		}
	}
	for _, d := range legal {
		p.step(g, d)
	}
	return legal
}

func (p *Player) step(g *Grid, d Direction) {
	dc, dr := d.Delta()
	p.X += float64(dc) * g.CellSize()
	p.Y += float64(dr) * g.CellSize()
}
