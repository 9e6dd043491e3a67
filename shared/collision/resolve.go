package collision

// Resolution is the branch taken for one solid cell.
type Resolution int

const (
	// None means the body no longer overlaps the cell.
	None Resolution = iota
	// Vertical lifted the body onto the cell and grounded it.
	Vertical
	PushRight
	PushLeft
	// Square is an exactly square overlap. It is left unresolved.
	Square
)

func (r Resolution) String() string {
	switch r {
	case None:
		return "none"
	case Vertical:
		return "vertical"
	case PushRight:
		return "push-right"
	case PushLeft:
		return "push-left"
	case Square:
		return "square"
	}
	return "unknown"
}

// ResolveCell pushes b out of a single cell along the axis of least
// penetration. The overlap is computed against b's current position.
func ResolveCell(b *Body, cell Candidate, cellSize float64) Resolution {
	inter, ok := Intersect(b.Rect(), CellRect(cell.CellX, cell.CellY, cellSize))
	if !ok {
		return None
	}

	switch {
	case inter.Height < inter.Width:
		b.Y = inter.Y + inter.Height
		b.Land()
		return Vertical
	case inter.Width < inter.Height:
		if inter.X == b.X {
			b.X = inter.X + inter.Width
			return PushRight
		}
		if inter.X > b.X {
			b.X = inter.X - b.Width
			return PushLeft
		}
		// inter.X can never be left of the body it was cut from.
		return None
	}
	return Square
}

// Resolve applies ResolveCell to each solid cell in order, each one seeing the
// adjustments made by the cells before it. It reports whether any cell landed
// the body. The per-cell outcomes are appended to into, which may be nil.
func Resolve(b *Body, solids []Candidate, cellSize float64, into []Resolution) (bool, []Resolution) {
	landed := false
	for _, c := range solids {
		res := ResolveCell(b, c, cellSize)
		if res == Vertical {
			landed = true
		}
		into = append(into, res)
	}
	return landed, into
}
