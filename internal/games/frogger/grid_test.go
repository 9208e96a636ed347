package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func testGrid() *Grid {
	// 8x6, walls at (2,1) and (5,4)
	occ := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 3, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	return NewGrid(8, 6, 100, occ)
}

func TestGridDimensions(t *testing.T) {
	g := testGrid()

	if g.Cols() != 8 || g.Rows() != 6 {
		t.Errorf("dims = %dx%d, expected 8x6", g.Cols(), g.Rows())
	}
	if g.Width() != 800 || g.Height() != 600 {
		t.Errorf("playfield = %vx%v, expected 800x600", g.Width(), g.Height())
	}
}

func TestGridOccupancyClamps(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name     string
		col, row int
		expected int
	}{
		{"free cell", 0, 0, 0},
		{"wall", 2, 1, 1},
		{"wall level 3", 5, 4, 3},
		{"above top clamps to row 0", 2, -1, 0},
		{"left of grid clamps to col 0", -3, 1, 0},
		{"below bottom clamps to last row", 5, 9, 0},
		{"right of grid clamps to last col", 12, 4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Occupancy(tc.col, tc.row); got != tc.expected {
				t.Errorf("Occupancy(%d, %d) = %d, expected %d", tc.col, tc.row, got, tc.expected)
			}
		})
	}
}

func TestGridNeighborClampsToBoundary(t *testing.T) {
	occ := [][]int{
		{1, 0},
		{0, 0},
	}
	g := NewGrid(2, 2, 10, occ)

	// Looking up from the wall cell clamps back onto the wall itself.
	if got := g.Neighbor(0, 0, DirUp); got != 1 {
		t.Errorf("Neighbor(0,0,Up) = %d, expected 1 (clamped onto itself)", got)
	}
	if got := g.Neighbor(1, 0, DirLeft); got != 1 {
		t.Errorf("Neighbor(1,0,Left) = %d, expected 1", got)
	}
	if got := g.Neighbor(1, 1, DirDown); got != 0 {
		t.Errorf("Neighbor(1,1,Down) = %d, expected 0", got)
	}
}

func TestGridCopiesLayout(t *testing.T) {
	occ := [][]int{{0, 1}}
	g := NewGrid(2, 1, 10, occ)
	occ[0][1] = 0

	if !g.IsWall(1, 0) {
		t.Error("grid must not alias the source layout")
	}
}

func TestGridCellMapping(t *testing.T) {
	g := testGrid()

	col, row := g.CellOf(350, 550)
	if col != 3 || row != 5 {
		t.Errorf("CellOf(350, 550) = (%d, %d), expected (3, 5)", col, row)
	}
	x, y := g.CellCenter(3, 5)
	if x != 350 || y != 550 {
		t.Errorf("CellCenter(3, 5) = (%v, %v), expected (350, 550)", x, y)
	}
	if r := g.CellRect(3, 5); r != core.NewRectF(300, 500, 100, 100) {
		t.Errorf("CellRect(3, 5) = %+v, expected (300, 500, 100x100)", r)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dc, dr int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			dc, dr := tc.d.Delta()
			if dc != tc.dc || dr != tc.dr {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dc, dr, tc.dc, tc.dr)
			}
		})
	}
}
