package skyhop

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	ButtonChar   = '░'
)

// ScreenRenderer rasterises draw calls onto a character screen.
// Each cell covers cellW x cellH world units.
type ScreenRenderer struct {
	dst   *core.Screen
	cellW float64
	cellH float64
}

// NewScreenRenderer creates a renderer drawing onto dst.
func NewScreenRenderer(dst *core.Screen, cellW, cellH float64) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, cellW: cellW, cellH: cellH}
}

// Clear blanks the screen.
func (r *ScreenRenderer) Clear() {
	r.dst.Clear()
}

// FillRect fills every cell the box covers after rounding to the grid.
// Boxes thinner than a cell still occupy one cell.
func (r *ScreenRenderer) FillRect(b core.Box, c core.Color) {
	x0, x1 := span(b.X, b.Right(), r.cellW)
	y0, y1 := span(b.Y, b.Bottom(), r.cellH)
	r.dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), fillRune(c), c)
}

// Text writes s on the row containing y. Size is ignored: a terminal has
// one font size.
func (r *ScreenRenderer) Text(s string, x, y float64, style TextStyle) {
	n := len([]rune(s))
	col := int(math.Round(x / r.cellW))
	switch style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	row := int(math.Floor(y / r.cellH))
	r.dst.DrawTextColored(col, row, s, style.Color)
}

func span(lo, hi, cell float64) (int, int) {
	a := int(math.Round(lo / cell))
	b := int(math.Round(hi / cell))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func fillRune(c core.Color) rune {
	switch c {
	case PlayerColor:
		return PlayerChar
	case ButtonColor:
		return ButtonChar
	default:
		return PlatformChar
	}
}
