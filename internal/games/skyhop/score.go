package skyhop

// Score counts new personal-best platforms.
// Watermark is the y of the highest platform reached; lower is higher.
type Score struct {
	Value     int
	Watermark float64
}

// NewScore starts at zero with the watermark on the ground.
func NewScore(groundY float64) Score {
	return Score{Watermark: groundY}
}

// Land records a landing on a platform at y and reports whether it
// was a new best.
func (s *Score) Land(y float64) bool {
	if y >= s.Watermark {
		return false
	}
	s.Value++
	s.Watermark = y
	return true
}
