package main

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

func TestParseScript(t *testing.T) {
	frames, err := parseScript("up,, Left+UP ,right")
	if err != nil {
		t.Fatalf("parseScript() error: %v", err)
	}
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}

	tests := []struct {
		tick int
		want []core.Action
	}{
		{0, []core.Action{core.ActionUp}},
		{1, nil},
		{2, []core.Action{core.ActionLeft, core.ActionUp}},
		{3, []core.Action{core.ActionRight}},
	}
	for _, tt := range tests {
		for _, a := range tt.want {
			if !frames[tt.tick].Has(a) {
				t.Errorf("tick %d missing %v", tt.tick, a)
			}
		}
		if len(tt.want) == 0 && frames[tt.tick].Has(core.ActionUp) {
			t.Errorf("tick %d should be empty", tt.tick)
		}
	}
}

func TestParseScriptRejectsUnknown(t *testing.T) {
	if _, err := parseScript("up,jump"); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}

func TestParseScriptEmpty(t *testing.T) {
	frames, err := parseScript("  ")
	if err != nil || frames != nil {
		t.Errorf("parseScript(blank) = %v, %v", frames, err)
	}
}

func TestSimulateReferenceLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	game := frogger.New("frogger", "Frogger", "frogger")

	report, err := simulate(game, core.DefaultConfig(), nil, 4)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	if report.Ticks != 240 {
		t.Errorf("ticks = %d, expected 240", report.Ticks)
	}
	if p := report.Final.Player; p.X != 350 || p.Y != 550 {
		t.Errorf("player at (%v, %v), expected spawn", p.X, p.Y)
	}
	if x := report.Final.Obstacles[0].X; math.Abs(x-400) > 1e-3 {
		t.Errorf("first obstacle x = %v, expected 400", x)
	}
}

func TestSimulateScriptMovesPlayer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	game := frogger.New("frogger", "Frogger", "frogger")
	script, err := parseScript("left,,left")
	if err != nil {
		t.Fatal(err)
	}

	report, err := simulate(game, core.DefaultConfig(), script, 0.1)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	if p := report.Final.Player; p.Col != 1 || p.Row != 5 {
		t.Errorf("player cell = (%d, %d), expected (1, 5)", p.Col, p.Row)
	}
}

func TestSimulateRejectsNegativeTime(t *testing.T) {
	game := frogger.New("frogger", "Frogger", "frogger")
	if _, err := simulate(game, core.DefaultConfig(), nil, -1); err == nil {
		t.Error("expected an error for negative seconds")
	}
}
