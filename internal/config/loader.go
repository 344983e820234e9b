package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in the config directories.
const FileName = "skyhop.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.skyhop/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (SkyhopConfig, error) {
	cfg, _, err := LoadSource(customPath)
	return cfg, err
}

// LoadSource is Load that also returns the file the config came from,
// or "" when the embedded default was used. Search path files that
// cannot be read or fail validation are skipped.
func LoadSource(customPath string) (SkyhopConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return SkyhopConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultSkyhopYAML)
	if err != nil {
		return DefaultSkyhopConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// LoadFile loads and validates a single config file.
func LoadFile(path string) (SkyhopConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SkyhopConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return SkyhopConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg SkyhopConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func parse(data []byte) (SkyhopConfig, error) {
	cfg := DefaultSkyhopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyhopConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SkyhopConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}

// Validate reports every field that would make the game unplayable.
func (c SkyhopConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	if c.Physics.JumpStrength >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_strength must be negative, got %v", c.Physics.JumpStrength))
	}
	if c.Physics.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.move_speed must not be negative, got %v", c.Physics.MoveSpeed))
	}
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("platforms.width", c.Platforms.Width)
	positive("platforms.height", c.Platforms.Height)
	positive("platforms.ground_height", c.Platforms.GroundHeight)
	positive("platforms.spacing_y", c.Platforms.SpacingY)
	if c.Platforms.SpacingX < 0 {
		errs = append(errs, fmt.Errorf("platforms.spacing_x must not be negative, got %v", c.Platforms.SpacingX))
	}
	if c.Platforms.Count < 1 {
		errs = append(errs, fmt.Errorf("platforms.count must be at least 1, got %d", c.Platforms.Count))
	}
	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("terminal.cell_width", c.Terminal.CellWidth)
	positive("terminal.cell_height", c.Terminal.CellHeight)
	if c.Terminal.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("terminal.hold_ticks must be at least 1, got %d", c.Terminal.HoldTicks))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}
