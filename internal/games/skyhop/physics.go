package skyhop

import "github.com/vovakirdan/skyhop/internal/core"

// Player is the bouncing sprite.
type Player struct {
	X, Y          float64 // Top-left corner in world units
	DX, DY        float64 // Velocity per tick; positive DY falls
	Width, Height float64
}

// Box returns the collision box of the player.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Input is the per-tick intent consumed by the physics step.
type Input struct {
	Horizontal int  // -1 left, 0 none, 1 right
	Jump       bool // Apply a jump impulse before gravity
}

// Physics holds the world constants for one session.
type Physics struct {
	Gravity      float64
	JumpStrength float64 // Negative: up
	MoveSpeed    float64
	WorldWidth   float64
	WorldHeight  float64
}

// Outcome reports what happened during a physics step.
type Outcome struct {
	FellThrough bool     // Player dropped below the world
	Landed      bool     // Player bounced off a platform
	Platform    Platform // The platform the player ended up on, valid when Landed
}

// Step advances the player by one tick.
//
// Order: jump, gravity, horizontal move, vertical move, x clamp,
// fall-through, landing. Landings only count while falling (DY > 0).
// When several platforms overlap, each one is applied in order and the
// last one decides the final position.
func (ph Physics) Step(p *Player, in Input, platforms []Platform) Outcome {
	if in.Jump {
		p.DY = ph.JumpStrength
	}

	p.DY += ph.Gravity
	p.DX = float64(sign(in.Horizontal)) * ph.MoveSpeed
	p.X += p.DX
	p.Y += p.DY

	p.X = core.ClampF(p.X, 0, max(0, ph.WorldWidth-p.Width))

	if p.Y > ph.WorldHeight {
		p.Y = ph.WorldHeight
		p.DY = 0
		return Outcome{FellThrough: true}
	}

	// Overlaps are tested against the post-move box and the incoming
	// velocity, so a snap from an earlier platform does not hide a later one.
	var out Outcome
	box := p.Box()
	falling := p.DY > 0
	for _, pl := range platforms {
		if falling && box.Intersects(pl.Box()) {
			p.Y = pl.Y - p.Height
			p.DY = ph.JumpStrength
			out.Landed = true
			out.Platform = pl
		}
	}
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
