package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Obstacle is a moving rectangle pinned to one grid row.
type Obstacle struct {
	Bounds core.RectF
	Row    int
	// Speed overrides the set speed when non-zero.
	Speed float64
}

// ObstacleSet is a named group of obstacles sharing a color and speed.
// Members share a profile, not physical state.
type ObstacleSet struct {
	Name      string
	Color     core.Color
	Speed     float64 // Playfield units per second, negative moves left
	Obstacles []Obstacle
}

// NewObstacleSet lays out a set from its level config.
func NewObstacleSet(g *Grid, oc config.ObstacleConfig) *ObstacleSet {
	color, ok := core.ParseColor(oc.Color)
	if !ok {
		color = core.ColorOrange
	}
	w, h := oc.Width, oc.Height
	if w <= 0 {
		w = g.CellSize()
	}
	if h <= 0 {
		h = g.CellSize()
	}

	set := &ObstacleSet{
		Name:      oc.Name,
		Color:     color,
		Speed:     oc.Speed,
		Obstacles: make([]Obstacle, 0, oc.Count*len(oc.Rows)),
	}
	for _, row := range oc.Rows {
		y := float64(row) * g.CellSize()
		for i := 0; i < oc.Count; i++ {
			x := oc.StartX + float64(i)*oc.Spacing
			set.Obstacles = append(set.Obstacles, Obstacle{
				Bounds: core.NewRectF(x, y, w, h),
				Row:    row,
			})
		}
	}
	return set
}

// speedOf returns the effective speed of obstacle i.
func (s *ObstacleSet) speedOf(i int) float64 {
	if v := s.Obstacles[i].Speed; v != 0 {
		return v
	}
	return s.Speed
}

// Advance moves every obstacle by speed*dt and wraps it around a playfield
// of the given width. Rightward obstacles whose left edge reaches the right
// boundary restart at x = 0; leftward ones whose right edge passes x = 0
// restart flush with the right boundary.
func (s *ObstacleSet) Advance(dt, width float64) {
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		v := s.speedOf(i)
		o.Bounds.X += v * dt

		switch {
		case v > 0 && o.Bounds.X >= width:
			o.Bounds.X = 0
		case v < 0 && o.Bounds.Right() <= 0:
			o.Bounds.X = width - o.Bounds.W
		}
	}
}

// Hit returns the index of the first obstacle overlapping c, or -1.
func (s *ObstacleSet) Hit(c core.Circle) int {
	for i := range s.Obstacles {
		if c.IntersectsRect(s.Obstacles[i].Bounds) {
			return i
		}
	}
	return -1
}
