// Package config provides YAML-based game configuration loading and
// difficulty management for skyhop.
package config

// SkyhopConfig contains all tunable parameters of the game.
// World units are pixel-like; the terminal frontend maps them to cells.
type SkyhopConfig struct {
	Physics    SkyhopPhysics    `yaml:"physics"`
	Player     SkyhopPlayer     `yaml:"player"`
	Platforms  SkyhopPlatforms  `yaml:"platforms"`
	Window     WindowConfig     `yaml:"window"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkyhopPhysics defines per-tick physics parameters.
type SkyhopPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to dy every tick
	JumpStrength float64 `yaml:"jump_strength"` // Bounce velocity (negative = up)
	MoveSpeed    float64 `yaml:"move_speed"`    // Horizontal velocity while steering
}

// SkyhopPlayer defines the player hitbox.
type SkyhopPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SkyhopPlatforms defines platform geometry and placement.
type SkyhopPlatforms struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Height of the full-width starting platform
	Count        int     `yaml:"count"`         // Platforms above the ground
	SpacingX     float64 `yaml:"spacing_x"`     // Horizontal step between neighbours
	SpacingY     float64 `yaml:"spacing_y"`     // Vertical distance between neighbours
}

// WindowConfig defines the world size used by the window frontend.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TerminalConfig defines how world units map onto terminal cells.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
	// HoldTicks is how long a steering key stays pressed after the
	// last key event. Terminals do not report key releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	StepIncrease   float64 `yaml:"step_increase"`   // Added to spacing_x at max difficulty
	WidthReduction float64 `yaml:"width_reduction"` // Removed from platform width at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return "", true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SkyhopConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
