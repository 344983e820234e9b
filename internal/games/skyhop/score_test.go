package skyhop

import "testing"

func TestScoreLand(t *testing.T) {
	s := NewScore(550)

	steps := []struct {
		y        float64
		newBest  bool
		score    int
		watermak float64
	}{
		{550, false, 0, 550}, // ground itself
		{450, true, 1, 450},
		{450, false, 1, 450}, // same platform again
		{550, false, 1, 450}, // lower platform
		{350, true, 2, 350},
		{-50, true, 3, -50},
		{250, false, 3, -50},
	}

	for i, st := range steps {
		if got := s.Land(st.y); got != st.newBest {
			t.Errorf("step %d: Land(%v) = %v, expected %v", i, st.y, got, st.newBest)
		}
		if s.Value != st.score || s.Watermark != st.watermak {
			t.Errorf("step %d: score=%d watermark=%v, expected %d and %v", i, s.Value, s.Watermark, st.score, st.watermak)
		}
	}
}
