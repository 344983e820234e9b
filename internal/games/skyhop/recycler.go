package skyhop

// Recycle drops platforms that are more than one viewport below the
// player and appends one replacement per dropped platform, so the slice
// length never changes.
//
// Removal happens first. Each replacement is generated from the last
// platform of the resulting slice. If every platform was dropped, the
// highest dropped one anchors the chain. An empty slice is returned
// unchanged.
func Recycle(platforms []Platform, playerY, viewportHeight float64, next func(Platform) Platform) ([]Platform, int) {
	if len(platforms) == 0 {
		return platforms, 0
	}

	limit := playerY + viewportHeight
	kept := make([]Platform, 0, len(platforms))
	var highest Platform
	removed := 0
	for _, p := range platforms {
		if p.Y > limit {
			if removed == 0 || p.Y < highest.Y {
				highest = p
			}
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return platforms, 0
	}

	anchor := highest
	if len(kept) > 0 {
		anchor = kept[len(kept)-1]
	}
	for i := 0; i < removed; i++ {
		anchor = next(anchor)
		kept = append(kept, anchor)
	}
	return kept, removed
}
