package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected all blanks", got)
	}
}

func TestScreenSetColoredBounds(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(3, 2, '*', ColorCyan)

	if c := s.GetCell(3, 2); c.Rune != '*' || c.Color != ColorCyan {
		t.Errorf("GetCell(3, 2) = %+v, expected cyan '*'", c)
	}

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p.X, p.Y, '!', ColorRed)
		if c := s.GetCell(p.X, p.Y); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank outside the screen", p.X, p.Y, c)
		}
	}
	if strings.ContainsRune(s.String(), '!') {
		t.Error("out-of-bounds writes leaked onto the screen")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 0, 3, 2), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("cell (%d, %d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(3, 1, "Hé!!", ColorRed)

	// Multi-byte runes take one cell; the tail is clipped.
	if got := strings.Split(s.String(), "\n")[1]; got != "   Hé!" {
		t.Errorf("row 1 = %q, expected %q", got, "   Hé!")
	}
	if c := s.GetCell(4, 1); c.Rune != 'é' || c.Color != ColorRed {
		t.Errorf("GetCell(4, 1) = %+v, expected red 'é'", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		col   int
	}{
		{20, "Hi", 9},
		{21, "Hi", 9},
		{10, "PAUSED", 2},
		{4, "toolong", -1},
	}

	for _, tc := range tests {
		s := NewScreen(tc.width, 1)
		s.DrawTextCentered(0, tc.text, ColorYellow)

		for i, r := range []rune(tc.text) {
			x := tc.col + i
			if x < 0 || x >= tc.width {
				continue
			}
			if c := s.GetCell(x, 0); c.Rune != r || c.Color != ColorYellow {
				t.Errorf("width %d %q: cell %d = %+v, expected yellow %q", tc.width, tc.text, x, c, r)
			}
		}
	}
}

func TestScreenDrawRectClips(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(2, -1, 5, 3), '#', ColorGreen)

	want := "  ##\n  ##\n    "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if c := s.GetCell(3, 1); c.Color != ColorGreen {
		t.Errorf("GetCell(3, 1).Color = %v, expected green", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.SetColored(3, 1, 'x', ColorDefault)
	s.DrawBox(NewRect(1, 0, 5, 4), ColorBlue)

	want := strings.Join([]string{
		" ┌───┐ ",
		" │ x │ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("box:\n%s\nexpected:\n%s", got, want)
	}
	if c := s.GetCell(5, 3); c.Color != ColorBlue {
		t.Errorf("corner color = %v, expected blue", c.Color)
	}
}

func TestScreenDrawBoxDegenerate(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawBox(NewRect(0, 0, 1, 4), ColorDefault)
	s.DrawBox(NewRect(0, 0, 4, 1), ColorDefault)

	if got := strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")); got != "" {
		t.Errorf("degenerate boxes drew %q", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColored(0, 0, "abcdef", ColorDefault)
	s.DrawTextColored(0, 2, "ghijkl", ColorDefault)

	s.Resize(4, 2)
	if got := s.String(); got != "abcd\n    " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(5, 3)
	if got := s.String(); got != "abcd \n     \n     " {
		t.Errorf("after grow = %q", got)
	}

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("no-op resize changed size to %dx%d", s.Width(), s.Height())
	}
}
