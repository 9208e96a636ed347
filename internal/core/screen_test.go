package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorOrange)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorOrange {
		t.Errorf("GetCell(5, 5).Color = %v, expected orange", s.GetCell(5, 5).Color)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("Clear() left %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 3, 3, 2), '#', ColorOlive)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			c := s.GetCell(x, y)
			if inside && (c.Rune != '#' || c.Color != ColorOlive) {
				t.Errorf("expected olive '#' at (%d, %d), got %+v", x, y, c)
			}
			if !inside && c.Rune != ' ' {
				t.Errorf("expected space at (%d, %d), got %q", x, y, c.Rune)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "World")
	if got := s.Row(2); !strings.HasSuffix(got, "Wor") {
		t.Errorf("Row(2) = %q, expected clipped suffix %q", got, "Wor")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected %q", got, "    abc    ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', ColorAqua)
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)

	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize() dims = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'X' || c.Color != ColorAqua {
		t.Errorf("Resize should preserve (1,1), got %+v", c)
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Errorf("Resize should not restore clipped content, got %q", s.Get(4, 4))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected 4 spaces", got)
	}
}
