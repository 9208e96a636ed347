package frogger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogNotifierWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	n := LogNotifier{Logger: log.New(&buf)}

	n.Notify(CollisionEvent{Tick: 7, Set: "middle", Obstacle: 2, X: 350, Y: 350})

	out := buf.String()
	for _, want := range []string{CollisionMessage, "tick=7", "set=middle", "obstacle=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLogNotifierNilLogger(t *testing.T) {
	// Must not panic.
	LogNotifier{}.Notify(CollisionEvent{})
}

func TestMultiNotifierSkipsNil(t *testing.T) {
	var a, b int
	n := MultiNotifier(
		NotifierFunc(func(CollisionEvent) { a++ }),
		nil,
		NotifierFunc(func(CollisionEvent) { b++ }),
	)

	n.Notify(CollisionEvent{})
	n.Notify(CollisionEvent{})

	if a != 2 || b != 2 {
		t.Errorf("sinks fired a=%d b=%d, expected 2 each", a, b)
	}
}
