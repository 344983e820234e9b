package config

import "math"

// Platforms never shrink below this width.
const minPlatformWidth = 20

// DifficultyManager calculates dynamic generation parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Step returns the horizontal step between neighbouring platforms.
func (d *DifficultyManager) Step(baseStep float64, score int, ticks int) float64 {
	return baseStep + d.Level(score, ticks)*d.cfg.Scaling.StepIncrease
}

// Width returns the platform width for newly generated platforms.
func (d *DifficultyManager) Width(baseWidth float64, score int, ticks int) float64 {
	w := baseWidth - d.Level(score, ticks)*d.cfg.Scaling.WidthReduction
	return math.Max(w, math.Min(baseWidth, minPlatformWidth))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
