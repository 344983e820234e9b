// Package skyhop implements an endless vertical platformer.
// The player bounces from platform to platform while the world scrolls
// upward; falling below the world ends the game.
package skyhop

import (
	"unicode/utf8"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// Game adapts a Session to the terminal platform: cells in, cells out.
type Game struct {
	session *Session
	cfg     config.SkyhopConfig
	runtime config.TerminalConfig
	paused  bool
	loaded  bool

	// Terminals report key presses but not releases; a steering key
	// stays down for holdLeft ticks after its last repeat.
	holdDir  Direction
	holdLeft int
}

// New creates a new game instance. The config is loaded on Reset.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyhop"
}

// Configure replaces the configuration. A game in progress keeps its
// rules until the player restarts.
func (g *Game) Configure(cfg config.SkyhopConfig) {
	g.cfg = cfg
	g.loaded = true
	if g.session != nil {
		g.session.Reconfigure(cfg)
	}
}

// Reset initializes or restarts the game. The world is sized so that
// one terminal cell covers cell_width x cell_height world units.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.loaded {
		g.cfg = loadConfig()
		g.loaded = true
	}
	g.runtime = g.cfg.Terminal
	g.paused = false
	g.holdLeft = 0

	w := float64(rc.ScreenW) * g.runtime.CellWidth
	h := float64(rc.ScreenH) * g.runtime.CellHeight
	g.session = NewSession(g.cfg, w, h, NewRandCoin(rc.Seed))
}

// loadConfig is used when nobody called Configure before the first
// Reset. A broken config file falls back to the defaults.
func loadConfig() config.SkyhopConfig {
	cfg, err := config.Load("")
	if err != nil {
		return config.DefaultSkyhopConfig()
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.State() == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.session.RequestRestart()
		}
		if in.Click != nil {
			x, y := g.cellToWorld(*in.Click)
			g.session.Click(x, y)
		}
		if g.session.Tick() {
			g.paused = false
			g.holdLeft = 0
			g.runtime.HoldTicks = g.session.Config().Terminal.HoldTicks
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.steer(in)
	if in.Has(core.ActionJump) {
		g.session.Jump()
	}
	g.session.Tick()
	return g.result()
}

func (g *Game) steer(in core.InputFrame) {
	var dir Direction
	switch {
	case in.Has(core.ActionLeft):
		dir = Left
	case in.Has(core.ActionRight):
		dir = Right
	}

	if dir != 0 {
		g.session.Press(dir)
		g.holdDir = dir
		g.holdLeft = g.runtime.HoldTicks
		return
	}
	if g.holdLeft > 0 {
		g.holdLeft--
		if g.holdLeft == 0 {
			g.session.Release(g.holdDir)
		}
	}
}

func (g *Game) cellToWorld(p core.Point) (float64, float64) {
	return (float64(p.X) + 0.5) * g.runtime.CellWidth, (float64(p.Y) + 0.5) * g.runtime.CellHeight
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Continue: g.session.State() == StateRunning,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.session.Draw(NewScreenRenderer(dst, g.runtime.CellWidth, g.runtime.CellHeight))

	if g.paused {
		drawBanner(dst, pauseMessage, core.ColorYellow)
	}
}

const pauseMessage = "PAUSED - press P to resume"

// drawBanner frames msg in a box centered on the screen. The box
// interior is blanked so the world does not bleed through.
func drawBanner(dst *core.Screen, msg string, c core.Color) {
	w := utf8.RuneCountInString(msg) + 4
	box := core.NewRect((dst.Width()-w)/2, dst.Height()/2-1, w, 3)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(dst.Height()/2, msg, c)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score().Value,
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "skyhop",
		Title:       "Skyhop",
		Description: "Bounce up an endless tower of platforms",
	}, func() registry.Game {
		return New()
	})
}
