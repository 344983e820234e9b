package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != DefaultSkyhopConfig() {
		t.Errorf("embedded default differs from DefaultSkyhopConfig():\n got %+v\nwant %+v", cfg, DefaultSkyhopConfig())
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
physics:
  gravity: 0.5
platforms:
  count: 4
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Platforms.Count != 4 {
		t.Errorf("count = %d, expected 4", cfg.Platforms.Count)
	}
	// Untouched fields keep defaults
	if cfg.Physics.JumpStrength != -12 {
		t.Errorf("jump_strength = %v, expected default -12", cfg.Physics.JumpStrength)
	}
	if cfg.Platforms.SpacingY != 100 {
		t.Errorf("spacing_y = %v, expected default 100", cfg.Platforms.SpacingY)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}

	bad := writeConfig(t, dir, "physics: [not, a, map]")
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
physics:
  gravity: 0
  jump_strength: 3
platforms:
  count: 0
`)

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() should reject invalid values")
	}
	for _, field := range []string{"physics.gravity", "physics.jump_strength", "platforms.count"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s, got: %v", field, err)
		}
	}
}

func TestValidateDefault(t *testing.T) {
	if err := DefaultSkyhopConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	cfg := DefaultSkyhopConfig()
	cfg.Difficulty.Progression.Type = "distance"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown progression type should be rejected")
	}
}

func TestLoadSourceCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("platforms:\n  count: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadSource(path)
	if err != nil {
		t.Fatalf("LoadSource() error: %v", err)
	}
	if source != path || cfg.Platforms.Count != 4 {
		t.Errorf("LoadSource() = count %d from %q, expected 4 from %q", cfg.Platforms.Count, source, path)
	}
}

func TestLoadSourceSkipsInvalidFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	userDir := filepath.Join(home, ".skyhop", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, FileName), []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadSource("")
	if err != nil {
		t.Fatalf("LoadSource() error: %v", err)
	}
	if source != "" {
		t.Errorf("source = %q, expected the embedded default", source)
	}
	if cfg.Physics.Gravity != DefaultSkyhopConfig().Physics.Gravity {
		t.Errorf("gravity = %v, expected the default", cfg.Physics.Gravity)
	}

	local := filepath.Join("configs", FileName)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("platforms:\n  count: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = LoadSource("")
	if err != nil {
		t.Fatalf("LoadSource() error: %v", err)
	}
	if source != local || cfg.Platforms.Count != 5 {
		t.Errorf("LoadSource() = count %d from %q, expected 5 from %q", cfg.Platforms.Count, source, local)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSkyhopConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "jump_strength: -12") {
		t.Errorf("marshalled YAML should use yaml tags, got:\n%s", data)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		initial     float64
		progression string
	}{
		{DifficultyEasy, true, 0.0, "score"},
		{DifficultyNormal, true, 0.3, "score"},
		{DifficultyHard, true, 0.7, "score"},
		{DifficultyFixed, false, 0.0, "score"},
		{"", false, 0.0, "score"},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSkyhopConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Difficulty.Progression.Type != tc.progression {
				t.Errorf("Progression = %q, expected %q", cfg.Difficulty.Progression.Type, tc.progression)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}
