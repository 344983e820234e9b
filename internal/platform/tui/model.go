package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// Rows reserved below the game screen for the help bar.
const helpHeight = 1

// Configurable is implemented by games that accept a new configuration
// while running.
type Configurable interface {
	Configure(cfg config.SkyhopConfig)
}

// Options carries the optional collaborators of a terminal session.
type Options struct {
	Logger *log.Logger

	// Reloads delivers configs from a file watcher. Nil disables reloads.
	Reloads <-chan config.SkyhopConfig
	// ReloadErrors delivers watcher errors. They are logged and ignored.
	ReloadErrors <-chan error

	// ScreenshotDir is where ctrl+s saves the screen. Empty disables it.
	ScreenshotDir string
}

// ConfigReloadMsg carries a reloaded configuration.
type ConfigReloadMsg struct {
	Config config.SkyhopConfig
}

// ReloadErrorMsg carries a failed reload.
type ReloadErrorMsg struct {
	Err error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	mapper     *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	ticking    bool
	quitting   bool

	// Screen size the game world was last built for. A resize during a
	// climb waits for the next restart.
	worldW, worldH int
	started        bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The last screen row is kept for the help bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenH > helpHeight {
		cfg.ScreenH -= helpHeight
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		mapper:     NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		ticking:    true,
		worldW:     cfg.ScreenW,
		worldH:     cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)

	return tea.Batch(
		tickCmd(m.config.TickRate),
		waitForReload(m.opts.Reloads),
		waitForReloadError(m.opts.ReloadErrors),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		if c, ok := m.game.(Configurable); ok {
			c.Configure(msg.Config)
			m.logger.Info("config reloaded, applies on restart")
		}
		return m, waitForReload(m.opts.Reloads)

	case ReloadErrorMsg:
		m.logger.Warn("config reload failed", "error", msg.Err)
		return m, waitForReloadError(m.opts.ReloadErrors)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.mapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		return m.wake()
	}
	return m, nil
}

// handleMouse forwards left clicks on the game area.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}

	m.inputFrame.SetClick(msg.X, msg.Y)
	if m.gameState.GameOver {
		return m.wake()
	}
	return m, nil
}

// wake restarts the tick loop after the game stopped asking for ticks.
func (m Model) wake() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. The world is sized from
// the screen, so a new size is applied by resetting the game: right away
// before the first tick, otherwise on the next restart.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := msg.Height
	if h > helpHeight {
		h -= helpHeight
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = h
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width

	switch {
	case !m.started && !m.gameState.GameOver:
		m.resetWorld()
		m.logger.Debug("resized", "width", msg.Width, "height", h)
	case m.worldW != msg.Width || m.worldH != h:
		m.logger.Info("resized, world size applies on restart", "width", msg.Width, "height", h)
	}

	return m, nil
}

// resetWorld rebuilds the game for the current screen size.
func (m *Model) resetWorld() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.worldW, m.worldH = m.config.ScreenW, m.config.ScreenH
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.started = true

	switch {
	case m.gameState.GameOver && !wasOver:
		m.logger.Info("game over", "score", m.gameState.Score)
	case !m.gameState.GameOver && wasOver:
		m.logger.Info("restart")
		if m.worldW != m.config.ScreenW || m.worldH != m.config.ScreenH {
			m.resetWorld()
			m.logger.Info("world resized", "width", m.worldW, "height", m.worldH)
		}
	}

	if !result.Continue {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.mapper.Keys()))
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Ticking reports whether the model is scheduling ticks.
func (m Model) Ticking() bool {
	return m.ticking
}

func waitForReload(ch <-chan config.SkyhopConfig) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadMsg{Config: cfg}
	}
}

func waitForReloadError(ch <-chan error) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return ReloadErrorMsg{Err: err}
	}
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
