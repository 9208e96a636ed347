// Package core provides the shared geometry, input, and screen types used by
// the game and the terminal host. It has no Bubble Tea dependency so game
// logic stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r overlaps other. Touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned rectangle in continuous playfield coordinates.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a continuous rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Circle is a disc in continuous playfield coordinates.
type Circle struct {
	X, Y float64 // Centre
	R    float64
}

// NewCircle creates a circle centred at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r}
}

// IntersectsRect reports whether the circle overlaps the rectangle.
// The closest point of the rectangle to the centre must lie strictly inside
// the circle, so a circle that only touches an edge does not overlap.
func (c Circle) IntersectsRect(r RectF) bool {
	nx := ClampF(c.X, r.X, r.Right())
	ny := ClampF(c.Y, r.Y, r.Bottom())
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < c.R*c.R
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() RectF {
	return NewRectF(c.X-c.R, c.Y-c.R, 2*c.R, 2*c.R)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// FloorDiv returns floor(v / step) as an int. step must be positive.
func FloorDiv(v, step float64) int {
	return int(math.Floor(v / step))
}
