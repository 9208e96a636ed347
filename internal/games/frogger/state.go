package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// State owns everything that changes during play. Only Tick mutates it.
type State struct {
	Grid        *Grid
	Player      *Player
	Sets        []*ObstacleSet
	SafeRow     int // -1 when the level has none
	PlayerColor core.Color

	tick     uint64
	notifier Notifier
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Collision *CollisionEvent // nil when the player was not hit
	Moves     []Direction     // Directions actually applied
}

// NewState builds a fresh state from a validated level config.
func NewState(cfg config.FroggerConfig) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	occupancy, err := cfg.Grid.Occupancy()
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	grid := NewGrid(cfg.Grid.Cols, cfg.Grid.Rows, cfg.Grid.CellSize, occupancy)
	color, ok := core.ParseColor(cfg.Player.Color)
	if !ok {
		color = core.ColorAqua
	}

	s := &State{
		Grid:        grid,
		Player:      NewPlayer(grid, cfg.Player.Spawn.Col, cfg.Player.Spawn.Row, cfg.Player.Radius),
		Sets:        make([]*ObstacleSet, 0, len(cfg.Obstacles)),
		SafeRow:     cfg.SafeRow,
		PlayerColor: color,
	}
	for _, oc := range cfg.Obstacles {
		s.Sets = append(s.Sets, NewObstacleSet(grid, oc))
	}
	return s, nil
}

// SetNotifier installs the collision sink. nil disables notifications.
func (s *State) SetNotifier(n Notifier) {
	s.notifier = n
}

// Ticks returns the number of ticks simulated so far.
func (s *State) Ticks() uint64 {
	return s.tick
}

// Tick advances the simulation by dt seconds and applies the input edges
// of this frame, in this order:
//  1. advance every obstacle,
//  2. test the player's resting position against the moved obstacles and
//     respawn on a hit,
//  3. apply the movement edges.
//
// Collision is therefore judged against this frame's obstacles and last
// frame's player cell.
func (s *State) Tick(dt float64, in core.InputFrame) TickResult {
	width := s.Grid.Width()
	for _, set := range s.Sets {
		set.Advance(dt, width)
	}

	var res TickResult
	if ev := CheckCollisions(s.Player, s.Sets); ev != nil {
		ev.Tick = s.tick
		if s.notifier != nil {
			s.notifier.Notify(*ev)
		}
		res.Collision = ev
	}

	res.Moves = s.Player.ApplyMoves(s.Grid, in)
	s.tick++
	return res
}
