package skyhop

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Align is the horizontal anchoring of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Size  float64 // Line height in world units
	Align Align
	Color core.Color
}

// Renderer is a drawing surface. Coordinates are camera-relative world
// units with the origin at the top-left of the viewport; text is anchored
// at the top of the line.
type Renderer interface {
	Clear()
	FillRect(b core.Box, c core.Color)
	Text(s string, x, y float64, style TextStyle)
}

// Palette.
const (
	PlayerColor   = core.ColorBrightRed
	PlatformColor = core.ColorGreen
	TextColor     = core.ColorWhite
	OverlayColor  = core.ColorRed
	ButtonColor   = core.ColorBlue
)

var (
	scoreStyle   = TextStyle{Size: 20, Align: AlignLeft, Color: TextColor}
	overlayStyle = TextStyle{Size: 40, Align: AlignCenter, Color: OverlayColor}
	buttonStyle  = TextStyle{Size: 20, Align: AlignCenter, Color: TextColor}
)

// Restart button size in world units.
const (
	buttonWidth  = 160
	buttonHeight = 50
)

// Draw issues one frame: clear, platforms, player, score and, after a
// fall, the game-over overlay with its restart button.
func (s *Session) Draw(r Renderer) {
	r.Clear()

	for _, p := range s.platforms {
		r.FillRect(p.Box().Translate(s.offset.X, s.offset.Y), PlatformColor)
	}
	r.FillRect(s.player.Box().Translate(s.offset.X, s.offset.Y), PlayerColor)

	r.Text(fmt.Sprintf("Score: %d", s.score.Value), 10, 10, scoreStyle)

	if s.state != StateGameOver {
		return
	}
	cx, cy := s.width/2, s.height/2
	r.Text("Game Over", cx, cy-2*overlayStyle.Size, overlayStyle)
	r.Text(fmt.Sprintf("Score: %d", s.score.Value), cx, cy-overlayStyle.Size/2, buttonStyle)

	btn := s.RestartButton()
	r.FillRect(btn, ButtonColor)
	r.Text("Restart", btn.X+btn.W/2, btn.Y+(btn.H-buttonStyle.Size)/2, buttonStyle)
}
