package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Host frames per second
	MaxDelta time.Duration // Upper bound for the elapsed time fed into one tick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		MaxDelta: 250 * time.Millisecond,
	}
}

// FixedDelta returns the nominal frame duration for the configured tick rate.
func (c RuntimeConfig) FixedDelta() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// ClampDelta bounds an elapsed time to [0, MaxDelta].
// A zero MaxDelta disables the upper bound.
func (c RuntimeConfig) ClampDelta(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		return c.MaxDelta
	}
	return d
}

// GameState is the per-tick status a game reports back to the host.
type GameState struct {
	Tick     uint64 // Ticks simulated since Reset
	Collided bool   // Whether a collision fired during the last tick
	Notice   string // Transient message for the HUD, empty when none
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
