package collision

// Collectible is a pickup placed by the level.
type Collectible struct {
	ID            int
	X, Y          float64
	Width, Height float64
	Collected     bool
}

func (c Collectible) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// Pickups owns the live collectibles of a level. Collected items are removed
// and never come back.
type Pickups struct {
	live  []Collectible
	total int
}

// NewPickups copies items into a new live set. Items already flagged as
// collected are skipped.
func NewPickups(items []Collectible) *Pickups {
	live := make([]Collectible, 0, len(items))
	for _, it := range items {
		if it.Collected {
			continue
		}
		live = append(live, it)
	}
	return &Pickups{live: live, total: len(live)}
}

// Live returns the items still in the level. The slice is only valid until
// the next Collect.
func (p *Pickups) Live() []Collectible { return p.live }

func (p *Pickups) Len() int   { return len(p.live) }
func (p *Pickups) Total() int { return p.total }

// Collected is the number of items picked up so far.
func (p *Pickups) Collected() int { return p.total - len(p.live) }

// Collect removes every live item overlapping body and calls onPickup once per
// removed item. The scan runs from the back so removal never shifts an item
// that has not been visited yet. It returns the number of items collected.
func (p *Pickups) Collect(body Rect, onPickup func(Collectible)) int {
	n := 0
	for i := len(p.live) - 1; i >= 0; i-- {
		it := p.live[i]
		if !body.Overlaps(it.Rect()) {
			continue
		}
		p.live = append(p.live[:i], p.live[i+1:]...)
		it.Collected = true
		n++
		if onPickup != nil {
			onPickup(it)
		}
	}
	return n
}
