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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorYellow)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected yellow 'X'", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawText(2, 0, "SCORE", ColorBrightYellow)

	if got := s.Row(0); got != "  SCORE     " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(2, 0).Color != ColorBrightYellow {
		t.Error("DrawText should apply the color")
	}

	// Clipped at the right edge
	s.DrawText(10, 0, "XYZ", ColorDefault)
	if got := s.Row(0); !strings.HasSuffix(got, "XY") {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorYellow)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("Resize gave %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear content")
	}
}
