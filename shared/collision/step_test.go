package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_FallOntoFloor(t *testing.T) {
	// Row 1 is a floor across the level; the body starts above it and
	// falls two pixels a step.
	g, err := NewGrid(8, 6, 16)
	require.NoError(t, err)
	for x := 0; x < 8; x++ {
		g.SetSolid(x, 1, true)
	}
	b, err := NewBody(40, 40, 16, 15)
	require.NoError(t, err)
	step := NewStep(g, b.Width, b.Height)
	require.False(t, step.FullProbe)

	landedAt := -1
	for i := 0; i < 20; i++ {
		b.VelocityY = -2
		b.Integrate()
		if step.Run(b).Landed {
			landedAt = i
			break
		}
	}

	require.NotEqual(t, -1, landedAt)
	assert.Equal(t, 32.0, b.Y)
	assert.True(t, b.Grounded)
	assert.Zero(t, b.VelocityY)
}

func TestStep_ClampThenResolve(t *testing.T) {
	g, err := NewGrid(4, 4, 16)
	require.NoError(t, err)
	g.SetSolid(3, 0, true)
	b, err := NewBody(60, -3, 16, 16)
	require.NoError(t, err)

	res := NewStep(g, 16, 16).Run(b)

	// Clamped to x=48,y=0 which sits exactly inside the solid cell (3,0):
	// a square overlap is left alone.
	assert.True(t, res.Landed)
	assert.Equal(t, 48.0, b.X)
	assert.Equal(t, 0.0, b.Y)
	assert.Equal(t, []Resolution{Square}, res.Resolutions)
}

func TestStep_FullProbeForLargeBodies(t *testing.T) {
	g, err := NewGrid(8, 8, 16)
	require.NoError(t, err)
	g.SetSolid(2, 1, true)
	b, err := NewBody(8, 30, 32, 32)
	require.NoError(t, err)

	step := NewStep(g, b.Width, b.Height)
	require.True(t, step.FullProbe)

	// The corner probe never reaches column 2 from x=8.
	assert.Empty(t, FilterSolid(g, Probe(b.X, b.Y, 16)))

	res := step.Run(b)

	assert.True(t, res.Landed)
	assert.Equal(t, 32.0, b.Y)
	require.Len(t, res.Solids, 1)
	assert.Equal(t, 2, res.Solids[0].CellX)
}

func TestStep_ProbedMarksSolidCells(t *testing.T) {
	g, err := NewGrid(8, 8, 16)
	require.NoError(t, err)
	g.SetSolid(2, 2, true)
	b, err := NewBody(17, 33, 16, 16)
	require.NoError(t, err)

	res := NewStep(g, 16, 16).Run(b)

	require.Len(t, res.Probed, 4)
	var solid []Candidate
	for _, c := range res.Probed {
		if c.Solid {
			solid = append(solid, c)
		}
	}
	require.Len(t, solid, 1)
	assert.Equal(t, 2, solid[0].CellX)
	assert.Equal(t, 2, solid[0].CellY)
	assert.Len(t, res.Solids, 1)
}
