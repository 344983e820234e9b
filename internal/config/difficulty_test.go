package config

import "testing"

func TestDifficultyDisabledUsesBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultSkyhopConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Step(150, 500, 0); got != 150 {
		t.Errorf("Step() = %v, expected base 150", got)
	}
	if got := d.Width(100, 500, 0); got != 100 {
		t.Errorf("Width() = %v, expected base 100", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{StepIncrease: 100, WidthReduction: 40},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		level float64
		step  float64
		width float64
	}{
		{0, 0, 150, 100},
		{50, 0.5, 200, 80},
		{100, 1, 250, 60},
		{1000, 1, 250, 60}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := d.Step(150, tc.score, 0); got != tc.step {
			t.Errorf("Step(%d) = %v, expected %v", tc.score, got, tc.step)
		}
		if got := d.Width(100, tc.score, 0); got != tc.width {
			t.Errorf("Width(%d) = %v, expected %v", tc.score, got, tc.width)
		}
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 5); got != 0.75 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
}

func TestDifficultyWidthFloor(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{WidthReduction: 500},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Width(100, 0, 0); got != minPlatformWidth {
		t.Errorf("Width() = %v, expected floor %v", got, minPlatformWidth)
	}
}
