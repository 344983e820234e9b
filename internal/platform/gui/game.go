// Package gui runs skyhop in a desktop window with ebiten.
package gui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

// Options carries the optional collaborators of a window session.
type Options struct {
	Logger       *log.Logger
	TPS          int
	Reloads      <-chan config.SkyhopConfig
	ReloadErrors <-chan error
}

var pauseStyle = skyhop.TextStyle{Size: 20, Align: skyhop.AlignCenter, Color: core.ColorYellow}

// Game implements ebiten.Game on top of a skyhop session.
type Game struct {
	session  *skyhop.Session
	renderer *imageRenderer
	logger   *log.Logger
	opts     Options
	width    int
	height   int
	paused   bool
	wasOver  bool
}

// NewGame creates a window game. The world has the window's size.
func NewGame(cfg config.SkyhopConfig, seed int64, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer, err := newImageRenderer()
	if err != nil {
		return nil, err
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	return &Game{
		session:  skyhop.NewSession(cfg, float64(w), float64(h), skyhop.NewRandCoin(seed)),
		renderer: renderer,
		logger:   logger,
		opts:     opts,
		width:    w,
		height:   h,
	}, nil
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	g.pollReloads()

	e := readEdges()
	if e.Quit {
		g.logger.Info("quit", "score", g.session.Score().Value)
		return ebiten.Termination
	}
	g.apply(e)
	return nil
}

// apply feeds one frame of input to the session and ticks it.
func (g *Game) apply(e Edges) {
	if g.session.State() == skyhop.StateRunning {
		if e.Pause {
			g.paused = !g.paused
		}
		if g.paused {
			return
		}

		switch {
		case e.LeftDown:
			g.session.Press(skyhop.Left)
		case e.RightDown:
			g.session.Press(skyhop.Right)
		case e.LeftUp:
			g.session.Release(skyhop.Left)
		case e.RightUp:
			g.session.Release(skyhop.Right)
		}
		if e.Jump {
			g.session.Jump()
		}
	} else {
		if e.Restart {
			g.session.RequestRestart()
		}
		if e.Clicked {
			g.session.Click(float64(e.ClickX), float64(e.ClickY))
		}
	}

	g.session.Tick()
	if g.logTransition() {
		g.resumeSteering(e)
	}
}

// logTransition logs state changes and reports a restart.
func (g *Game) logTransition() bool {
	over := g.session.State() == skyhop.StateGameOver
	restarted := !over && g.wasOver
	switch {
	case over && !g.wasOver:
		g.logger.Info("game over", "score", g.session.Score().Value, "ticks", g.session.Ticks())
	case restarted:
		g.paused = false
		g.logger.Info("restart")
	}
	g.wasOver = over
	return restarted
}

// resumeSteering re-presses a direction key held through a restart,
// since a fresh session starts without steering.
func (g *Game) resumeSteering(e Edges) {
	switch {
	case e.LeftHeld:
		g.session.Press(skyhop.Left)
	case e.RightHeld:
		g.session.Press(skyhop.Right)
	}
}

// pollReloads applies configs from the watcher without blocking.
func (g *Game) pollReloads() {
	for {
		select {
		case cfg, ok := <-g.opts.Reloads:
			if !ok {
				g.opts.Reloads = nil
				continue
			}
			g.session.Reconfigure(cfg)
			g.logger.Info("config reloaded, applies on restart")
		case err, ok := <-g.opts.ReloadErrors:
			if !ok {
				g.opts.ReloadErrors = nil
				continue
			}
			g.logger.Warn("config reload failed", "error", err)
		default:
			return
		}
	}
}

// Draw renders the session.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.dst = screen
	g.session.Draw(g.renderer)

	if g.paused {
		g.renderer.Text("PAUSED - press P to resume", float64(g.width)/2, float64(g.height)/2, pauseStyle)
	}
}

// Layout keeps the logical screen at the world size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Session exposes the underlying session.
func (g *Game) Session() *skyhop.Session {
	return g.session
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.SkyhopConfig, seed int64, opts Options) error {
	g, err := NewGame(cfg, seed, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	g.logger.Info("game started", "width", cfg.Window.Width, "height", cfg.Window.Height, "seed", seed)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
