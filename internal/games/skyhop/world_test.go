package skyhop

import (
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
)

func newTestGenerator(coin Coin) *Generator {
	cfg := config.DefaultSkyhopConfig().Platforms
	g := NewGenerator(coin)
	g.PlatformWidth = cfg.Width
	g.Height = cfg.Height
	g.GroundHeight = cfg.GroundHeight
	g.Count = cfg.Count
	g.StepX = cfg.SpacingX
	g.SpacingY = cfg.SpacingY
	return g
}

func TestGenerateInitialLayout(t *testing.T) {
	g := newTestGenerator(coinOf(true))
	platforms := g.GenerateInitial(800, 600)

	if len(platforms) != 11 {
		t.Fatalf("expected ground + 10 platforms, got %d", len(platforms))
	}

	ground := platforms[0]
	if ground != (Platform{X: 0, Y: 550, Width: 800, Height: 50}) {
		t.Errorf("ground = %+v", ground)
	}

	// Always stepping right: 350, 500, 650, then clamped at 700.
	wantX := []float64{350, 500, 650, 700, 700, 700, 700, 700, 700, 700}
	for i, p := range platforms[1:] {
		wantY := 550 - float64(i+1)*100
		if p.X != wantX[i] || p.Y != wantY {
			t.Errorf("platform %d at (%v, %v), expected (%v, %v)", i+1, p.X, p.Y, wantX[i], wantY)
		}
		if p.Width != 100 || p.Height != 20 {
			t.Errorf("platform %d size %vx%v, expected 100x20", i+1, p.Width, p.Height)
		}
	}
}

func TestGenerateInitialClampsLeft(t *testing.T) {
	g := newTestGenerator(coinOf(false))
	platforms := g.GenerateInitial(800, 600)

	wantX := []float64{350, 200, 50, 0, 0}
	for i, want := range wantX {
		if got := platforms[i+1].X; got != want {
			t.Errorf("platform %d x = %v, expected %v", i+1, got, want)
		}
	}
}

func TestGenerateInitialNarrowWorld(t *testing.T) {
	g := newTestGenerator(coinOf(true, false))
	platforms := g.GenerateInitial(60, 600)

	for i, p := range platforms[1:] {
		if p.X != 0 {
			t.Errorf("platform %d x = %v, expected 0 when the world is narrower than a platform", i+1, p.X)
		}
	}
}

func TestNextStepsAboveLast(t *testing.T) {
	g := newTestGenerator(coinOf(true, false))
	g.WorldWidth = 800

	last := Platform{X: 100, Y: -200, Width: 100, Height: 20}

	right := g.Next(last)
	if right.X != 250 || right.Y != -300 {
		t.Errorf("Next() heads = (%v, %v), expected (250, -300)", right.X, right.Y)
	}

	left := g.Next(last)
	if left.X != 0 || left.Y != -300 {
		t.Errorf("Next() tails = (%v, %v), expected clamped (0, -300)", left.X, left.Y)
	}
}

func TestNextFromGroundUsesPlatformWidth(t *testing.T) {
	g := newTestGenerator(coinOf(true))
	g.WorldWidth = 800

	p := g.Next(Platform{X: 0, Y: 550, Width: 800, Height: 50})
	if p.Width != 100 || p.Height != 20 {
		t.Errorf("Next() size = %vx%v, expected 100x20", p.Width, p.Height)
	}
	if p.Y != 450 {
		t.Errorf("Next() y = %v, expected 450", p.Y)
	}
}

func TestRandCoinDeterministic(t *testing.T) {
	a, b := NewRandCoin(7), NewRandCoin(7)
	heads := 0
	for i := 0; i < 1000; i++ {
		x, y := a.Heads(), b.Heads()
		if x != y {
			t.Fatalf("coins with the same seed diverged at flip %d", i)
		}
		if x {
			heads++
		}
	}
	if heads < 400 || heads > 600 {
		t.Errorf("heads = %d of 1000, expected roughly half", heads)
	}
}
