package skyhop

// Offset is the camera translation subtracted from world positions.
type Offset struct {
	X, Y float64
}

// Camera keeps the player centred in a fixed-size viewport.
type Camera struct {
	ViewportWidth  float64
	ViewportHeight float64
}

// Offset returns the translation for the current player position.
// It depends on nothing but its inputs.
func (c Camera) Offset(p Player) Offset {
	return Offset{
		X: p.X - (c.ViewportWidth/2 - p.Width/2),
		Y: p.Y - (c.ViewportHeight/2 - p.Height/2),
	}
}
