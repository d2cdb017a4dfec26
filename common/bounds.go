package common

// Bounds is the playfield size objects are kept inside of.
type Bounds struct {
	Width  float64
	Height float64
}

// Outside reports whether a circle of the given radius centred at p has fully
// left the playfield.
func (b Bounds) Outside(p Vec, radius float64) bool {
	return p.X > b.Width+radius ||
		p.X < -radius ||
		p.Y > b.Height+radius ||
		p.Y < -radius
}

// Clamp keeps p inside the playfield with the given margin.
func (b Bounds) Clamp(p Vec, margin float64) Vec {
	if p.X < margin {
		p.X = margin
	} else if p.X > b.Width-margin {
		p.X = b.Width - margin
	}
	if p.Y < margin {
		p.Y = margin
	} else if p.Y > b.Height-margin {
		p.Y = b.Height - margin
	}
	return p
}
