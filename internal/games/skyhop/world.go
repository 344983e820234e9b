package skyhop

import (
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Platform is a solid ledge the player can bounce on.
// Platforms never change after they are generated.
type Platform struct {
	X, Y          float64 // Top-left corner in world units
	Width, Height float64
}

// Box returns the collision box of the platform.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Coin decides which way the next platform steps.
type Coin interface {
	// Heads reports whether the next platform steps right.
	Heads() bool
}

// RandCoin is a Coin backed by a seeded math/rand source.
type RandCoin struct {
	rng *rand.Rand
}

// NewRandCoin creates a coin with its own RNG.
func NewRandCoin(seed int64) *RandCoin {
	return &RandCoin{rng: rand.New(rand.NewSource(seed))}
}

// Heads returns true with probability 1/2.
func (c *RandCoin) Heads() bool {
	return c.rng.Intn(2) == 1
}

// Generator places platforms. Vertical placement and clamping are
// deterministic; only the left/right step comes from the Coin.
type Generator struct {
	WorldWidth    float64
	PlatformWidth float64
	Height        float64 // Platform thickness
	GroundHeight  float64
	Count         int     // Platforms above the ground in the initial set
	StepX         float64 // Horizontal step between neighbours
	SpacingY      float64

	coin Coin
}

// NewGenerator creates a generator drawing steps from coin.
func NewGenerator(coin Coin) *Generator {
	return &Generator{coin: coin}
}

// GenerateInitial builds the starting set: a ground platform spanning the
// whole world followed by Count platforms stacked SpacingY apart.
// The first stacked platform is horizontally centred.
func (g *Generator) GenerateInitial(width, height float64) []Platform {
	g.WorldWidth = width

	platforms := make([]Platform, 0, g.Count+1)
	platforms = append(platforms, Platform{
		X:      0,
		Y:      height - g.GroundHeight,
		Width:  width,
		Height: g.GroundHeight,
	})

	x := g.clampX((width - g.PlatformWidth) / 2)
	for i := 0; i < g.Count; i++ {
		platforms = append(platforms, Platform{
			X:      x,
			Y:      height - g.GroundHeight - float64(i+1)*g.SpacingY,
			Width:  g.PlatformWidth,
			Height: g.Height,
		})
		x = g.step(x)
	}
	return platforms
}

// Next returns one platform SpacingY above last, stepped left or right.
func (g *Generator) Next(last Platform) Platform {
	return Platform{
		X:      g.step(last.X),
		Y:      last.Y - g.SpacingY,
		Width:  g.PlatformWidth,
		Height: g.Height,
	}
}

func (g *Generator) step(x float64) float64 {
	if g.coin.Heads() {
		x += g.StepX
	} else {
		x -= g.StepX
	}
	return g.clampX(x)
}

func (g *Generator) clampX(x float64) float64 {
	return core.ClampF(x, 0, max(0, g.WorldWidth-g.PlatformWidth))
}
