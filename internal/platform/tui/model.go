package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	shotDir    string
	quitting   bool
}

// NewModel resets the game for the given terminal size and wraps it in a
// Bubble Tea model. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())

	if home, err := os.UserHomeDir(); err == nil {
		m.shotDir = filepath.Join(home, ".frogger", "screenshots")
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("reset %s: %w", game.ID(), err)
	}
	m.gameState = game.State()
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records direction edges for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight())
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen buffer. The simulation works in playfield
// units, so the game keeps running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playfieldHeight())
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FixedDelta()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	if m.gameState.Collided {
		m.logger.Debug("collision", "game", m.game.ID(), "tick", m.gameState.Tick)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", errors.New("no home directory for screenshots")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// footer renders the key help line.
func (m Model) footer() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// playfieldHeight is the terminal height left after the footer.
func (m Model) playfieldHeight() int {
	h := m.config.ScreenH - lipgloss.Height(m.footer())
	if h < 0 {
		return 0
	}
	return h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.footer())
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
