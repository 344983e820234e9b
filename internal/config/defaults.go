package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

// DefaultSkyhopConfig returns the default configuration.
// It mirrors defaults/skyhop.yaml and is used when the embedded file cannot be parsed.
func DefaultSkyhopConfig() SkyhopConfig {
	return SkyhopConfig{
		Physics: SkyhopPhysics{
			Gravity:      0.8,
			JumpStrength: -12,
			MoveSpeed:    5,
		},
		Player: SkyhopPlayer{
			Width:  30,
			Height: 30,
		},
		Platforms: SkyhopPlatforms{
			Width:        100,
			Height:       20,
			GroundHeight: 50,
			Count:        10,
			SpacingX:     150,
			SpacingY:     100,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "skyhop",
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			HoldTicks:  8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				StepIncrease:   100,
				WidthReduction: 40,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSkyhopYAML
}
