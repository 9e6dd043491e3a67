package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func acorns() []Collectible {
	return []Collectible{
		{ID: 1, X: 0, Y: 0, Width: 16, Height: 16},
		{ID: 2, X: 10, Y: 0, Width: 16, Height: 16},
		{ID: 3, X: 100, Y: 0, Width: 16, Height: 16},
		{ID: 4, X: 20, Y: 4, Width: 16, Height: 16},
		{ID: 5, X: 36, Y: 0, Width: 16, Height: 16},
	}
}

func liveIDs(p *Pickups) []int {
	var ids []int
	for _, c := range p.Live() {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestPickups_CollectRemovesOverlapping(t *testing.T) {
	p := NewPickups(acorns())
	body := Rect{X: 12, Y: 2, Width: 16, Height: 15}

	var events []Collectible
	n := p.Collect(body, func(c Collectible) { events = append(events, c) })

	assert.Equal(t, 3, n)
	assert.Equal(t, []int{3, 5}, liveIDs(p))
	assert.Len(t, events, 3)

	seen := map[int]int{}
	for _, e := range events {
		seen[e.ID]++
		assert.True(t, e.Collected)
	}
	assert.Equal(t, map[int]int{1: 1, 2: 1, 4: 1}, seen)
	assert.Equal(t, 3, p.Collected())
	assert.Equal(t, 5, p.Total())
}

func TestPickups_AdjacentRemovalsDoNotSkip(t *testing.T) {
	items := make([]Collectible, 6)
	for i := range items {
		items[i] = Collectible{ID: i, X: float64(i), Y: 0, Width: 4, Height: 4}
	}
	p := NewPickups(items)

	n := p.Collect(Rect{X: 0, Y: 0, Width: 16, Height: 16}, nil)

	assert.Equal(t, 6, n)
	assert.Zero(t, p.Len())
}

func TestPickups_NeverResurrected(t *testing.T) {
	p := NewPickups(acorns())
	body := Rect{X: 100, Y: 0, Width: 16, Height: 16}

	first := 0
	p.Collect(body, func(Collectible) { first++ })
	second := 0
	p.Collect(body, func(Collectible) { second++ })

	assert.Equal(t, 1, first)
	assert.Zero(t, second)
	assert.NotContains(t, liveIDs(p), 3)
}

func TestPickups_TouchingIsNotPickup(t *testing.T) {
	p := NewPickups([]Collectible{{ID: 1, X: 16, Y: 0, Width: 16, Height: 16}})

	n := p.Collect(Rect{X: 0, Y: 0, Width: 16, Height: 16}, nil)

	assert.Zero(t, n)
	assert.Equal(t, 1, p.Len())
}

func TestNewPickups_SkipsCollected(t *testing.T) {
	items := acorns()
	items[0].Collected = true

	p := NewPickups(items)

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 4, p.Total())
	assert.Zero(t, p.Collected())
}
