package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// State is the lifecycle of a session.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Direction is a steering direction.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// pendingInput collects input written between ticks. Later writes win.
type pendingInput struct {
	horizontal int
	jump       bool
	restart    bool
}

// Session owns everything a single game needs: the player, the live
// platforms, the score and the running/game-over state.
// All mutation goes through its methods and happens on one goroutine.
type Session struct {
	cfg        config.SkyhopConfig
	next       *config.SkyhopConfig
	width      float64
	height     float64
	physics    Physics
	camera     Camera
	generator  *Generator
	difficulty *config.DifficultyManager

	player    Player
	platforms []Platform
	score     Score
	state     State
	offset    Offset
	ticks     int
	input     pendingInput
}

// NewSession creates a running session for a width x height world.
// The viewport has the same size as the world.
func NewSession(cfg config.SkyhopConfig, width, height float64, coin Coin) *Session {
	s := &Session{
		width:     width,
		height:    height,
		generator: NewGenerator(coin),
		camera:    Camera{ViewportWidth: width, ViewportHeight: height},
	}
	s.apply(cfg)
	s.Restart()
	return s
}

func (s *Session) apply(cfg config.SkyhopConfig) {
	s.cfg = cfg
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	s.physics = Physics{
		Gravity:      cfg.Physics.Gravity,
		JumpStrength: cfg.Physics.JumpStrength,
		MoveSpeed:    cfg.Physics.MoveSpeed,
		WorldWidth:   s.width,
		WorldHeight:  s.height,
	}

	g := s.generator
	g.Height = cfg.Platforms.Height
	g.GroundHeight = cfg.Platforms.GroundHeight
	g.Count = cfg.Platforms.Count
	g.SpacingY = cfg.Platforms.SpacingY
}

// Reconfigure swaps in a new configuration at the next restart.
// The game in progress keeps its current rules.
func (s *Session) Reconfigure(cfg config.SkyhopConfig) {
	s.next = &cfg
}

// Restart discards the current game and starts a fresh one.
func (s *Session) Restart() {
	if s.next != nil {
		s.apply(*s.next)
		s.next = nil
	}

	s.player = Player{
		X:      s.width / 2,
		Y:      s.height / 2,
		Width:  s.cfg.Player.Width,
		Height: s.cfg.Player.Height,
	}
	s.ticks = 0
	s.tuneGenerator(0)
	s.platforms = s.generator.GenerateInitial(s.width, s.height)
	s.score = NewScore(s.platforms[0].Y)
	s.state = StateRunning
	s.input = pendingInput{}
	s.offset = s.camera.Offset(s.player)
}

// Tick runs one frame and reports whether the host should schedule
// another one. A finished session only wakes up for a restart request.
func (s *Session) Tick() bool {
	if s.state == StateGameOver {
		if s.input.restart {
			s.Restart()
			return true
		}
		s.input.jump = false
		return false
	}

	in := Input{Horizontal: s.input.horizontal, Jump: s.input.jump}
	s.input.jump = false
	s.input.restart = false
	s.ticks++

	out := s.physics.Step(&s.player, in, s.platforms)
	if out.FellThrough {
		s.state = StateGameOver
		s.offset = s.camera.Offset(s.player)
		return false
	}
	if out.Landed {
		s.score.Land(out.Platform.Y)
	}

	s.tuneGenerator(s.score.Value)
	s.platforms, _ = Recycle(s.platforms, s.player.Y, s.height, s.generator.Next)
	s.offset = s.camera.Offset(s.player)
	return true
}

func (s *Session) tuneGenerator(score int) {
	base := s.cfg.Platforms
	s.generator.StepX = s.difficulty.Step(base.SpacingX, score, s.ticks)
	s.generator.PlatformWidth = s.difficulty.Width(base.Width, score, s.ticks)
}

// Press starts steering in dir. It replaces any previous direction.
func (s *Session) Press(dir Direction) {
	s.input.horizontal = int(dir)
}

// Release stops steering. Releasing either direction stops all movement.
func (s *Session) Release(Direction) {
	s.input.horizontal = 0
}

// Jump requests a jump impulse on the next tick.
func (s *Session) Jump() {
	s.input.jump = true
}

// RequestRestart asks for a restart on the next tick.
// Ignored while the session is still running.
func (s *Session) RequestRestart() {
	if s.state == StateGameOver {
		s.input.restart = true
	}
}

// Click handles a pointer click in viewport coordinates. Only clicks on
// the restart button during game over have an effect.
func (s *Session) Click(x, y float64) {
	if s.state == StateGameOver && s.RestartButton().Contains(x, y) {
		s.input.restart = true
	}
}

// RestartButton returns the restart button in viewport coordinates.
func (s *Session) RestartButton() core.Box {
	return core.NewBox(
		s.width/2-buttonWidth/2,
		s.height/2+buttonHeight/2,
		buttonWidth,
		buttonHeight,
	)
}

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Platforms returns a copy of the live platforms.
func (s *Session) Platforms() []Platform {
	out := make([]Platform, len(s.platforms))
	copy(out, s.platforms)
	return out
}

// Score returns the current score and watermark.
func (s *Session) Score() Score { return s.score }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Offset returns the camera offset computed on the last tick.
func (s *Session) Offset() Offset { return s.offset }

// Ticks returns the number of simulated ticks since the last restart.
func (s *Session) Ticks() int { return s.ticks }

// Config returns the configuration of the game in progress.
func (s *Session) Config() config.SkyhopConfig { return s.cfg }

// Size returns the world dimensions.
func (s *Session) Size() (width, height float64) { return s.width, s.height }
