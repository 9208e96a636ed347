package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Direction is one of the four unit moves on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in the order input is evaluated.
var Directions = [...]Direction{DirUp, DirLeft, DirDown, DirRight}

// Delta returns the column and row offset of one step in d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Action returns the input action that requests a move in d.
func (d Direction) Action() core.Action {
	switch d {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	}
	return core.ActionNone
}

// Grid is the static level layout: an occupancy level per cell, 0 for free
// and anything above 0 for a wall. It never changes after NewGrid.
type Grid struct {
	cols, rows int
	cellSize   float64
	cells      []int // row-major, len cols*rows
}

// NewGrid builds a grid from a row-major occupancy matrix. Missing entries are
// free and negative values are treated as free. The matrix is copied.
func NewGrid(cols, rows int, cellSize float64, occupancy [][]int) *Grid {
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		cells:    make([]int, cols*rows),
	}
	for row := 0; row < rows && row < len(occupancy); row++ {
		for col := 0; col < cols && col < len(occupancy[row]); col++ {
			if v := occupancy[row][col]; v > 0 {
				g.cells[row*cols+col] = v
			}
		}
	}
	return g
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the edge length of one cell in playfield units.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Width returns the playfield width in playfield units.
func (g *Grid) Width() float64 { return float64(g.cols) * g.cellSize }

// Height returns the playfield height in playfield units.
func (g *Grid) Height() float64 { return float64(g.rows) * g.cellSize }

// Occupancy returns the level of the cell at (col, row). Coordinates outside
// the grid are clamped to the nearest boundary cell.
func (g *Grid) Occupancy(col, row int) int {
	col = core.Clamp(col, 0, g.cols-1)
	row = core.Clamp(row, 0, g.rows-1)
	return g.cells[row*g.cols+col]
}

// IsWall reports whether the (clamped) cell is occupied.
func (g *Grid) IsWall(col, row int) bool {
	return g.Occupancy(col, row) > 0
}

// Neighbor returns the occupancy one step from (col, row) in d. At the grid
// edge the lookup clamps back onto the boundary cell itself.
func (g *Grid) Neighbor(col, row int, d Direction) int {
	dc, dr := d.Delta()
	return g.Occupancy(col+dc, row+dr)
}

// CellOf maps a playfield position onto the cell containing it.
func (g *Grid) CellOf(x, y float64) (col, row int) {
	return core.FloorDiv(x, g.cellSize), core.FloorDiv(y, g.cellSize)
}

// CellCenter returns the playfield coordinates of the centre of a cell.
func (g *Grid) CellCenter(col, row int) (x, y float64) {
	half := g.cellSize / 2
	return float64(col)*g.cellSize + half, float64(row)*g.cellSize + half
}

// CellRect returns the playfield rectangle covered by a cell.
func (g *Grid) CellRect(col, row int) core.RectF {
	return core.NewRectF(float64(col)*g.cellSize, float64(row)*g.cellSize, g.cellSize, g.cellSize)
}
