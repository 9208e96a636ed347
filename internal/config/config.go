// Package config provides YAML-based level configuration loading and
// difficulty presets for Frogger.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrInvalidConfig is returned (wrapped) when a level fails validation.
var ErrInvalidConfig = errors.New("invalid level config")

// FroggerConfig describes one playable level.
type FroggerConfig struct {
	Name      string           `yaml:"name"`
	Grid      GridConfig       `yaml:"grid"`
	Player    PlayerConfig     `yaml:"player"`
	SafeRow   int              `yaml:"safe_row"` // Highlighted row, -1 for none
	Obstacles []ObstacleConfig `yaml:"obstacles"`
}

// GridConfig defines the playfield grid.
type GridConfig struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"`
	// Layout holds one string per row. '.' or ' ' is a free cell, '#' a wall
	// of level 1, and a digit an explicit occupancy level. Empty means all free.
	Layout []string `yaml:"layout,omitempty"`
}

// PlayerConfig defines the player token.
type PlayerConfig struct {
	Spawn  CellRef `yaml:"spawn"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

// CellRef addresses a grid cell.
type CellRef struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// ObstacleConfig defines a named obstacle set. Every listed row gets Count
// obstacles starting at StartX and spaced Spacing apart.
type ObstacleConfig struct {
	Name    string  `yaml:"name"`
	Color   string  `yaml:"color"`
	Speed   float64 `yaml:"speed"` // Playfield units per second, negative moves left
	Rows    []int   `yaml:"rows"`
	Count   int     `yaml:"count"`
	StartX  float64 `yaml:"start_x"`
	Spacing float64 `yaml:"spacing"`
	Width   float64 `yaml:"width,omitempty"`  // Defaults to one cell
	Height  float64 `yaml:"height,omitempty"` // Defaults to one cell
}

// Occupancy decodes the layout into a row-major occupancy matrix.
// Missing rows or columns decode as free cells.
func (g GridConfig) Occupancy() ([][]int, error) {
	cells := make([][]int, g.Rows)
	for row := range cells {
		cells[row] = make([]int, g.Cols)
		if row >= len(g.Layout) {
			continue
		}
		col := 0
		for _, r := range g.Layout[row] {
			if col >= g.Cols {
				break
			}
			switch {
			case r == '.' || r == ' ':
				cells[row][col] = 0
			case r == '#':
				cells[row][col] = 1
			case r >= '0' && r <= '9':
				cells[row][col] = int(r - '0')
			default:
				return nil, fmt.Errorf("%w: layout row %d col %d: unknown cell %q", ErrInvalidConfig, row, col, r)
			}
			col++
		}
	}
	return cells, nil
}

// Validate checks the level for structural problems. The player radius must
// stay below half a cell so a resting token never reaches an adjacent row.
func (c FroggerConfig) Validate() error {
	g := c.Grid
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, g.Cols, g.Rows)
	}
	if g.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %v", ErrInvalidConfig, g.CellSize)
	}
	if len(g.Layout) > g.Rows {
		return fmt.Errorf("%w: layout has %d rows, grid has %d", ErrInvalidConfig, len(g.Layout), g.Rows)
	}
	for i, line := range g.Layout {
		if n := len([]rune(line)); n > g.Cols {
			return fmt.Errorf("%w: layout row %d has %d cells, grid has %d columns", ErrInvalidConfig, i, n, g.Cols)
		}
	}
	cells, err := g.Occupancy()
	if err != nil {
		return err
	}

	sp := c.Player.Spawn
	if sp.Col < 0 || sp.Col >= g.Cols || sp.Row < 0 || sp.Row >= g.Rows {
		return fmt.Errorf("%w: spawn (%d,%d) outside %dx%d grid", ErrInvalidConfig, sp.Col, sp.Row, g.Cols, g.Rows)
	}
	if cells[sp.Row][sp.Col] > 0 {
		return fmt.Errorf("%w: spawn (%d,%d) is a wall", ErrInvalidConfig, sp.Col, sp.Row)
	}
	if c.Player.Radius <= 0 || c.Player.Radius >= g.CellSize/2 {
		return fmt.Errorf("%w: player radius must be in (0, %v), got %v", ErrInvalidConfig, g.CellSize/2, c.Player.Radius)
	}
	if c.Player.Color != "" {
		if _, ok := core.ParseColor(c.Player.Color); !ok {
			return fmt.Errorf("%w: unknown player color %q", ErrInvalidConfig, c.Player.Color)
		}
	}
	if c.SafeRow < -1 || c.SafeRow >= g.Rows {
		return fmt.Errorf("%w: safe_row %d outside grid", ErrInvalidConfig, c.SafeRow)
	}

	seen := make(map[string]bool, len(c.Obstacles))
	for i, o := range c.Obstacles {
		if o.Name == "" {
			return fmt.Errorf("%w: obstacle set %d has no name", ErrInvalidConfig, i)
		}
		if seen[o.Name] {
			return fmt.Errorf("%w: duplicate obstacle set %q", ErrInvalidConfig, o.Name)
		}
		seen[o.Name] = true
		if o.Count < 0 || o.Width < 0 || o.Height < 0 {
			return fmt.Errorf("%w: obstacle set %q has negative count or size", ErrInvalidConfig, o.Name)
		}
		if o.Color != "" {
			if _, ok := core.ParseColor(o.Color); !ok {
				return fmt.Errorf("%w: obstacle set %q: unknown color %q", ErrInvalidConfig, o.Name, o.Color)
			}
		}
		for _, row := range o.Rows {
			if row < 0 || row >= g.Rows {
				return fmt.Errorf("%w: obstacle set %q: row %d outside grid", ErrInvalidConfig, o.Name, row)
			}
		}
	}
	return nil
}
