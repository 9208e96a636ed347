package frogger

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

const frame = 1.0 / 60.0

// scenarioConfig is an all-free 8x6 grid with one obstacle on row 4.
func scenarioConfig(obstacleX, speed float64) config.FroggerConfig {
	return config.FroggerConfig{
		Name:    "scenario",
		Grid:    config.GridConfig{Cols: 8, Rows: 6, CellSize: 100},
		Player:  config.PlayerConfig{Spawn: config.CellRef{Col: 3, Row: 5}, Radius: 25},
		SafeRow: -1,
		Obstacles: []config.ObstacleConfig{{
			Name:   "row4",
			Speed:  speed,
			Rows:   []int{4},
			Count:  1,
			StartX: obstacleX,
		}},
	}
}

func newTestState(t *testing.T, cfg config.FroggerConfig) *State {
	t.Helper()
	s, err := NewState(cfg)
	if err != nil {
		t.Fatalf("NewState() error: %v", err)
	}
	return s
}

func TestNewStateFromDefaultLevel(t *testing.T) {
	s := newTestState(t, config.DefaultFroggerConfig())

	if s.Player.X != 350 || s.Player.Y != 550 || s.Player.Radius != 25 {
		t.Errorf("player = (%v, %v, r=%v), expected (350, 550, r=25)", s.Player.X, s.Player.Y, s.Player.Radius)
	}
	if len(s.Sets) != 3 {
		t.Fatalf("expected 3 obstacle sets, got %d", len(s.Sets))
	}
	for _, set := range s.Sets {
		if len(set.Obstacles) != 3 {
			t.Errorf("set %s has %d obstacles, expected 3", set.Name, len(set.Obstacles))
		}
	}
	if s.SafeRow != 2 {
		t.Errorf("safe row = %d, expected 2", s.SafeRow)
	}
}

func TestNewStateRejectsInvalidConfig(t *testing.T) {
	cfg := scenarioConfig(0, 100)
	cfg.Grid.Cols = 0

	if _, err := NewState(cfg); err == nil {
		t.Error("NewState() should reject an invalid config")
	}
}

func TestScenarioFourSecondsNoCollision(t *testing.T) {
	s := newTestState(t, scenarioConfig(0, 100))
	collisions := 0
	s.SetNotifier(NotifierFunc(func(CollisionEvent) { collisions++ }))

	idle := core.NewInputFrame()
	for i := 0; i < 240; i++ {
		if res := s.Tick(frame, idle); res.Collision != nil {
			t.Fatalf("tick %d: unexpected collision %v", i, res.Collision)
		}
	}

	if x := s.Sets[0].Obstacles[0].Bounds.X; math.Abs(x-400) > 1e-6 {
		t.Errorf("obstacle x = %v after 4s, expected 400", x)
	}
	if s.Player.X != 350 || s.Player.Y != 550 {
		t.Errorf("player moved to (%v, %v)", s.Player.X, s.Player.Y)
	}
	if collisions != 0 {
		t.Errorf("notifier fired %d times", collisions)
	}
	if s.Ticks() != 240 {
		t.Errorf("Ticks() = %d, expected 240", s.Ticks())
	}
}

func TestScenarioObstacleWrapsNextTick(t *testing.T) {
	s := newTestState(t, scenarioConfig(0, 100))
	s.Sets[0].Obstacles[0].Bounds.X = 800

	s.Tick(frame, core.NewInputFrame())

	if x := s.Sets[0].Obstacles[0].Bounds.X; x != 0 {
		t.Errorf("x = %v, expected wrap to 0", x)
	}
}

func TestCollisionUsesPreMovePosition(t *testing.T) {
	// Obstacle parked over (3,4), directly above the spawn cell.
	s := newTestState(t, scenarioConfig(300, 0))
	var events []CollisionEvent
	s.SetNotifier(NotifierFunc(func(ev CollisionEvent) { events = append(events, ev) }))

	up := core.NewInputFrame()
	up.Set(core.ActionUp)

	res := s.Tick(frame, up)
	if res.Collision != nil {
		t.Fatal("collision must be judged before this tick's move")
	}
	if s.Player.Y != 450 {
		t.Fatalf("player Y = %v, expected the move to apply (450)", s.Player.Y)
	}

	res = s.Tick(frame, core.NewInputFrame())
	if res.Collision == nil {
		t.Fatal("expected a collision on the next tick")
	}
	if res.Collision.Tick != 1 || res.Collision.Set != "row4" {
		t.Errorf("event = %+v, expected tick 1 in row4", res.Collision)
	}
	if s.Player.X != 350 || s.Player.Y != 550 {
		t.Errorf("player at (%v, %v), expected spawn", s.Player.X, s.Player.Y)
	}
	if len(events) != 1 {
		t.Errorf("notifier fired %d times, expected 1", len(events))
	}
}

func TestObstaclesAdvanceBeforeDetection(t *testing.T) {
	// Obstacle on the spawn row just left of the player: only its advanced
	// position overlaps.
	cfg := scenarioConfig(200, 100)
	cfg.Obstacles[0].Rows = []int{5}
	s := newTestState(t, cfg)

	if ev := CheckCollisions(s.Player, s.Sets); ev != nil {
		t.Fatal("precondition: no overlap before advancing")
	}

	res := s.Tick(0.5, core.NewInputFrame())
	if res.Collision == nil {
		t.Error("expected collision against this tick's obstacle position")
	}
}

func TestCollisionWinsOverMoveInSameTick(t *testing.T) {
	cfg := scenarioConfig(200, 100)
	cfg.Obstacles[0].Rows = []int{5}
	s := newTestState(t, cfg)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)

	res := s.Tick(0.5, left)
	if res.Collision == nil {
		t.Fatal("expected a collision")
	}
	// Reset to spawn, then the edge moves from spawn.
	if s.Player.X != 250 || s.Player.Y != 550 {
		t.Errorf("player at (%v, %v), expected (250, 550)", s.Player.X, s.Player.Y)
	}
}

func TestRespawnOnOverlappedSpawnRefires(t *testing.T) {
	cfg := scenarioConfig(300, 0)
	cfg.Obstacles[0].Rows = []int{5}
	s := newTestState(t, cfg)

	for i := 0; i < 3; i++ {
		if res := s.Tick(frame, core.NewInputFrame()); res.Collision == nil {
			t.Fatalf("tick %d: expected the reset to fire again", i)
		}
	}
}

func TestPlayerStaysGridAligned(t *testing.T) {
	s := newTestState(t, config.DefaultFroggerConfig())
	script := []core.Action{core.ActionUp, core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionUp}

	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Set(script[(i/7)%len(script)])
		}
		s.Tick(frame, in)

		half := s.Grid.CellSize() / 2
		if math.Mod(s.Player.X-half, s.Grid.CellSize()) != 0 || math.Mod(s.Player.Y-half, s.Grid.CellSize()) != 0 {
			t.Fatalf("tick %d: player off-grid at (%v, %v)", i, s.Player.X, s.Player.Y)
		}
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestState(t, config.DefaultFroggerConfig())
	s.Tick(frame, core.NewInputFrame())

	snap := s.Snapshot()
	if snap.Tick != 1 || snap.Cols != 8 || snap.Rows != 6 {
		t.Errorf("snapshot header = %+v", snap)
	}
	if len(snap.Obstacles) != 9 {
		t.Errorf("expected 9 obstacle views, got %d", len(snap.Obstacles))
	}
	if snap.Obstacles[8].Set != "upper" || snap.Obstacles[8].Color != "olive" {
		t.Errorf("last obstacle = %+v, expected upper/olive", snap.Obstacles[8])
	}
	if snap.Player.Col != 3 || snap.Player.Row != 5 || snap.Player.Color != "aqua" {
		t.Errorf("player view = %+v", snap.Player)
	}

	snap.Occupancy[0][0] = 9
	if s.Grid.Occupancy(0, 0) != 0 {
		t.Error("snapshot must not alias the grid")
	}
}
