package frogger

import (
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// viewport maps playfield units onto screen characters. Terminal cells are
// roughly twice as tall as wide, so a grid cell is drawn about 2:1.
type viewport struct {
	offX, offY   int
	cellW, cellH int
	cols, rows   int
	unit         float64 // playfield units per grid cell
}

func newViewport(snap Snapshot, w, h, x0, y0 int) (viewport, bool) {
	if snap.Cols <= 0 || snap.Rows <= 0 || snap.CellSize <= 0 {
		return viewport{}, false
	}
	cellW := w / snap.Cols
	cellH := h / snap.Rows
	if cellW > 2*cellH {
		cellW = 2 * cellH
	} else if cellW >= 2 && cellH > cellW/2 {
		cellH = cellW / 2
	}
	if cellW < 1 || cellH < 1 {
		return viewport{}, false
	}
	return viewport{
		offX:  x0 + (w-cellW*snap.Cols)/2,
		offY:  y0 + (h-cellH*snap.Rows)/2,
		cellW: cellW,
		cellH: cellH,
		cols:  snap.Cols,
		rows:  snap.Rows,
		unit:  snap.CellSize,
	}, true
}

func (v viewport) toX(x float64) int {
	return v.offX + int(math.Floor(x/v.unit*float64(v.cellW)))
}

func (v viewport) toY(y float64) int {
	return v.offY + int(math.Floor(y/v.unit*float64(v.cellH)))
}

// field returns the screen rectangle covered by the playfield.
func (v viewport) field() core.Rect {
	return core.NewRect(v.offX, v.offY, v.cellW*v.cols, v.cellH*v.rows)
}

// project maps a playfield rectangle to screen characters, clipped to the field.
func (v viewport) project(r core.RectF) core.Rect {
	f := v.field()
	x0 := max(v.toX(r.X), f.X)
	y0 := max(v.toY(r.Y), f.Y)
	x1 := min(v.toX(r.Right()), f.Right())
	y1 := min(v.toY(r.Bottom()), f.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawGrid(dst *core.Screen, v viewport, g *Grid, safeRow int) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			cell := v.project(g.CellRect(col, row))
			switch {
			case g.IsWall(col, row):
				dst.DrawRect(cell, WallChar, core.ColorGray)
			case row == safeRow:
				dst.DrawRect(cell, SafeChar, core.ColorLavender)
			default:
				dst.SetColored(cell.X, cell.Y, FloorChar, core.ColorGray)
			}
		}
	}
}

func drawObstacles(dst *core.Screen, v viewport, snap Snapshot) {
	for _, o := range snap.Obstacles {
		color, _ := core.ParseColor(o.Color)
		r := v.project(core.NewRectF(o.X, o.Y, o.W, o.H))
		// Leave a one-character gap so neighbours stay distinguishable.
		if r.W > 2 {
			r.W--
		}
		dst.DrawRect(r, ObstacleChar, color)
	}
}

func drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	p := snap.Player
	color, _ := core.ParseColor(p.Color)

	c := core.NewCircle(p.X, p.Y, p.Radius)
	r := v.project(c.Bounds())
	drawn := false
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			// Sample the playfield point under the centre of the character.
			px := (float64(x-v.offX) + 0.5) / float64(v.cellW) * v.unit
			py := (float64(y-v.offY) + 0.5) / float64(v.cellH) * v.unit
			dx, dy := px-c.X, py-c.Y
			if dx*dx+dy*dy <= c.R*c.R {
				dst.SetColored(x, y, PlayerChar, color)
				drawn = true
			}
		}
	}
	if !drawn {
		dst.SetColored(v.toX(p.X), v.toY(p.Y), PlayerChar, color)
	}
}

// drawBanner frames msg in a box centred on area. When the box does not fit,
// the message goes to the right end of the HUD row instead.
func drawBanner(dst *core.Screen, area core.Rect, msg string) {
	w := len([]rune(msg)) + 4
	if area.W < w || area.H < 3 {
		text := " " + msg + " "
		dst.DrawTextColored(max(dst.Width()-len([]rune(text))-1, 0), 0, text, core.ColorRed)
		return
	}

	box := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-3)/2, w, 3)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+2, box.Y+1, msg, core.ColorRed)
}
