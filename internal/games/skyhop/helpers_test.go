package skyhop

import (
	"strings"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// scriptedCoin replays a fixed sequence of flips, cycling when exhausted.
type scriptedCoin struct {
	seq []bool
	i   int
}

func coinOf(seq ...bool) *scriptedCoin {
	return &scriptedCoin{seq: seq}
}

func (c *scriptedCoin) Heads() bool {
	if len(c.seq) == 0 {
		return false
	}
	v := c.seq[c.i%len(c.seq)]
	c.i++
	return v
}

func newTestSession(coin Coin) *Session {
	return NewSession(config.DefaultSkyhopConfig(), 800, 600, coin)
}

// recorder is a Renderer that remembers every call.
type recorder struct {
	ops []op
}

type op struct {
	kind  string // "clear", "rect" or "text"
	box   core.Box
	color core.Color
	text  string
	x, y  float64
	style TextStyle
}

func (r *recorder) Clear() {
	r.ops = append(r.ops, op{kind: "clear"})
}

func (r *recorder) FillRect(b core.Box, c core.Color) {
	r.ops = append(r.ops, op{kind: "rect", box: b, color: c})
}

func (r *recorder) Text(s string, x, y float64, style TextStyle) {
	r.ops = append(r.ops, op{kind: "text", text: s, x: x, y: y, style: style, color: style.Color})
}

// screenRow returns row y of the screen as plain text.
func screenRow(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
