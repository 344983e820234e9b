package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

const defaultTextSize = 16

var background = colornames.Midnightblue

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     colornames.White,
	core.ColorRed:         colornames.Crimson,
	core.ColorGreen:       colornames.Green,
	core.ColorYellow:      colornames.Gold,
	core.ColorBlue:        colornames.Royalblue,
	core.ColorCyan:        colornames.Cyan,
	core.ColorWhite:       colornames.White,
	core.ColorBrightRed:   colornames.Red,
	core.ColorBrightGreen: colornames.Lime,
	core.ColorGray:        colornames.Gray,
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return colornames.White
}

// imageRenderer draws a session onto an ebiten image. One world unit is
// one pixel.
type imageRenderer struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newImageRenderer() (*imageRenderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &imageRenderer{
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

func (r *imageRenderer) Clear() {
	r.dst.Fill(background)
}

func (r *imageRenderer) FillRect(b core.Box, c core.Color) {
	vector.FillRect(r.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorOf(c), false)
}

// Text draws s with its top edge at y, anchored horizontally at x.
func (r *imageRenderer) Text(s string, x, y float64, style skyhop.TextStyle) {
	face := r.face(style.Size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(textOrigin(s, x, face, style.Align), y)
	op.ColorScale.ScaleWithColor(colorOf(style.Color))
	text.Draw(r.dst, s, face, op)
}

// face returns the face for a line height. Sizes come from a handful of
// fixed text styles, so the map stays small.
func (r *imageRenderer) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = defaultTextSize
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: r.source, Size: size}
	r.faces[size] = f
	return f
}

// textOrigin returns the left edge of s for its alignment.
func textOrigin(s string, x float64, face text.Face, align skyhop.Align) float64 {
	w, _ := text.Measure(s, face, 0)
	switch align {
	case skyhop.AlignCenter:
		return x - w/2
	case skyhop.AlignRight:
		return x - w
	default:
		return x
	}
}
