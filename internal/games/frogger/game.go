// Package frogger implements a grid-based crossing game: the player hops one
// cell at a time across a fixed grid while rows of obstacles scroll sideways.
// Touching an obstacle sends the player back to the spawn cell.
package frogger

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Visual characters for rendering
const (
	WallChar     = '▓'
	SafeChar     = '░'
	FloorChar    = '·'
	ObstacleChar = '█'
	PlayerChar   = '●'
)

// noticeDuration is how long the collision banner stays on the HUD.
const noticeDuration = time.Second

// Game adapts a State to the registry.Game interface and draws it.
type Game struct {
	id    string
	title string
	level string

	runtime  core.RuntimeConfig
	cfg      config.FroggerConfig
	state    *State
	notifier Notifier

	noticeLeft time.Duration
	collided   bool
}

// CLI-level settings applied on Reset.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	globalNotifier   Notifier
)

// SetConfigPath sets a custom level file that overrides the built-in level.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the obstacle speed preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetNotifier sets the collision sink installed into every game on Reset.
func SetNotifier(n Notifier) {
	globalNotifier = n
}

// New creates a game that plays the given built-in level.
func New(id, title, level string) *Game {
	return &Game{id: id, title: title, level: level}
}

func init() {
	registry.Register("frogger", func() registry.Game {
		return New("frogger", "Frogger", "frogger")
	})
	registry.Register("frogger_walls", func() registry.Game {
		return New("frogger_walls", "Frogger (Walls)", "frogger_walls")
	})
	registry.Register("frogger_rush", func() registry.Game {
		return New("frogger_rush", "Frogger (Rush)", "frogger_rush")
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the level and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadFrogger(configPath, g.level)
	if err != nil {
		return fmt.Errorf("frogger: load level %s: %w", g.level, err)
	}
	config.ApplyFroggerPreset(&cfg, difficultyPreset)
	return g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh session from an explicit level config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.FroggerConfig) error {
	state, err := NewState(cfg)
	if err != nil {
		return fmt.Errorf("frogger: %w", err)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.state = state
	g.noticeLeft = 0
	g.collided = false

	sink := MultiNotifier(globalNotifier, g.notifier)
	state.SetNotifier(sink)
	return nil
}

// SetGameNotifier installs an additional collision sink for this game only.
// It takes effect on the next Reset.
func (g *Game) SetGameNotifier(n Notifier) {
	g.notifier = n
}

// Step advances the game by one host frame that lasted dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}

	dt = g.runtime.ClampDelta(dt)
	res := g.state.Tick(dt.Seconds(), in)

	g.collided = res.Collision != nil
	if g.collided {
		g.noticeLeft = noticeDuration
	} else if g.noticeLeft > 0 {
		g.noticeLeft -= dt
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Collided: g.collided}
	if g.state != nil {
		st.Tick = g.state.Ticks()
	}
	if g.noticeLeft > 0 {
		st.Notice = CollisionMessage
	}
	return st
}

// Snapshot returns the render data for the current tick.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return g.state.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	snap := g.state.Snapshot()
	v, ok := newViewport(snap, dst.Width(), dst.Height()-1, 0, 1)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	drawGrid(dst, v, g.state.Grid, snap.SafeRow)
	drawObstacles(dst, v, snap)
	drawPlayer(dst, v, snap)
	dst.DrawText(1, 0, fmt.Sprintf(" %s ", g.title))
	if g.noticeLeft > 0 {
		drawBanner(dst, v.field(), CollisionMessage)
	}
}
