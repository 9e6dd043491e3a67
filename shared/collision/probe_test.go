package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(cands []Candidate) [][2]int {
	out := make([][2]int, len(cands))
	for i, c := range cands {
		out[i] = [2]int{c.CellX, c.CellY}
	}
	return out
}

func TestProbe_AlignedYieldsOneCandidate(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		wantCell [2]int
	}{
		{"origin", 0, 0, [2]int{0, 0}},
		{"interior", 16, 32, [2]int{1, 2}},
		{"far right", 160, 48, [2]int{10, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Probe(tt.x, tt.y, 16)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantCell, cells(got)[0])
			assert.Equal(t, BottomLeft, got[0].Corner)
		})
	}
}

func TestProbe_UnalignedYieldsFourCandidates(t *testing.T) {
	for _, pos := range [][2]float64{{1, 1}, {17, 33}, {100.5, 7.25}, {15.999, 0.001}} {
		assert.Len(t, Probe(pos[0], pos[1], 16), 4, "position %v", pos)
	}
}

func TestProbe_Order(t *testing.T) {
	got := Probe(17, 33, 16)

	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {2, 2}, {1, 3}}, cells(got))
	assert.Equal(t, []Corner{BottomLeft, TopRight, BottomRight, TopLeft},
		[]Corner{got[0].Corner, got[1].Corner, got[2].Corner, got[3].Corner})
}

func TestProbe_SingleAxisSplit(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want [][2]int
	}{
		{"x only", 20, 32, [][2]int{{1, 2}, {2, 2}}},
		{"y only", 32, 31, [][2]int{{2, 1}, {2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cells(Probe(tt.x, tt.y, 16)))
		})
	}
}

func TestProbeAABB(t *testing.T) {
	t.Run("aligned cell", func(t *testing.T) {
		got := ProbeAABB(Rect{X: 16, Y: 16, Width: 16, Height: 16}, 16)
		assert.Equal(t, [][2]int{{1, 1}}, cells(got))
	})

	t.Run("large body spans 3x3", func(t *testing.T) {
		got := ProbeAABB(Rect{X: 8, Y: 8, Width: 32, Height: 32}, 16)
		assert.Equal(t, [][2]int{
			{0, 0}, {1, 0}, {2, 0},
			{0, 1}, {1, 1}, {2, 1},
			{0, 2}, {1, 2}, {2, 2},
		}, cells(got))
		for _, c := range got {
			assert.Equal(t, Spanned, c.Corner)
		}
	})

	t.Run("matches corner probe for one-cell bodies", func(t *testing.T) {
		full := ProbeAABB(Rect{X: 17, Y: 33, Width: 16, Height: 16}, 16)
		assert.ElementsMatch(t, cells(Probe(17, 33, 16)), cells(full))
	})
}

func TestCovers(t *testing.T) {
	assert.True(t, Covers(16, 16, 16))
	assert.True(t, Covers(16, 15, 16))
	assert.False(t, Covers(17, 16, 16))
	assert.False(t, Covers(16, 40, 16))
}

func TestFilterSolid(t *testing.T) {
	g, err := NewGrid(4, 4, 16)
	require.NoError(t, err)
	g.SetSolid(2, 3, true)
	g.SetSolid(1, 3, true)

	got := FilterSolid(g, Probe(17, 33, 16))

	assert.Equal(t, [][2]int{{2, 3}, {1, 3}}, cells(got))
	for _, c := range got {
		assert.True(t, c.Solid)
	}
}

func TestFilterSolid_OutOfRangeIsEmpty(t *testing.T) {
	g, err := NewGrid(2, 2, 16)
	require.NoError(t, err)
	g.SetSolid(1, 1, true)

	got := FilterSolid(g, []Candidate{{CellX: -1, CellY: 0}, {CellX: 2, CellY: 1}, {CellX: 1, CellY: 5}})
	assert.Empty(t, got)
}
