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
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}
	if s.GetCell(5, 5).Color != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %v, expected red", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return an uncolored cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorBlue)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		text  string
		wantX int
	}{
		{"full width", NewRect(0, 0, 20, 5), "Hi", 9},
		{"inside rect", NewRect(4, 0, 10, 5), "PAUSED", 6},
		{"odd slack", NewRect(4, 0, 9, 5), "PAUSED", 5},
		{"wider than rect", NewRect(4, 0, 3, 5), "PAUSED", 4},
		{"multi-byte runes", NewRect(0, 0, 10, 5), "░░", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(20, 5)
			s.DrawTextCentered(tc.r, 2, tc.text, ColorYellow)

			first := []rune(tc.text)[0]
			if got := s.GetCell(tc.wantX, 2); got.Rune != first || got.Color != ColorYellow {
				t.Errorf("cell (%d, 2) = %+v, expected %q in yellow", tc.wantX, got, first)
			}
			if tc.wantX > 0 && s.GetCell(tc.wantX-1, 2).Rune != ' ' {
				t.Errorf("text starts before x=%d", tc.wantX)
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.GetCell(c.x, c.y); got.Rune != c.r || got.Color != ColorGray {
			t.Errorf("corner (%d, %d) = %+v, expected %q in gray", c.x, c.y, got, c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' || s.GetCell(5, y).Rune != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawTextColor(0, 2, "CCCCC", ColorCyan)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("After resize, dimensions should be 8x2, got %dx%d", s.Width(), s.Height())
	}
	if got, want := s.String(), strings.Repeat(" ", 8)+"\n"+strings.Repeat(" ", 8); got != want {
		t.Errorf("Resize should clear content, got %q", got)
	}

	s.DrawText(0, 1, "kept")
	s.Resize(8, 2)
	if !strings.Contains(s.String(), "kept") {
		t.Error("Resize to the same size should keep content")
	}
}
