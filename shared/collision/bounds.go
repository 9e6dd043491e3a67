package collision

// Bounds is the horizontal extent of the level plus an implicit floor at y=0.
type Bounds struct {
	Width float64
}

// BoundsFor returns the bounds of a tile layer.
func BoundsFor(g TileGrid) Bounds {
	return Bounds{Width: LevelWidth(g)}
}

// Clamp keeps b inside the level. Falling below y=0 lands the body on the
// implicit floor; the return value reports that landing.
func (wb Bounds) Clamp(b *Body) bool {
	landed := false
	if b.Y < 0 {
		b.Y = 0
		b.Land()
		landed = true
	}
	if b.X < 0 {
		b.X = 0
	}
	if b.X+b.Width > wb.Width {
		b.X = wb.Width - b.Width
	}
	return landed
}
