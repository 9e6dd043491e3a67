package leveldata

import (
	"testing"

	"github.com/automoto/pete/shared/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileSpace_RejectsBadCellSize(t *testing.T) {
	_, err := NewTileSpace(4, 4, 0)
	assert.ErrorIs(t, err, ErrInvalidTileSize)
}

func TestTileSpace_Solid(t *testing.T) {
	ts, err := NewTileSpace(10, 5, 16)
	require.NoError(t, err)

	ts.AddSolid(2, 1)
	ts.AddSolid(-1, 0)
	ts.AddSolid(10, 0)

	assert.True(t, ts.Solid(2, 1))
	assert.False(t, ts.Solid(1, 1))
	assert.False(t, ts.Solid(2, 2))
	assert.False(t, ts.Solid(-1, 0))
	assert.False(t, ts.Solid(50, 50))
	assert.Equal(t, []collision.Rect{{X: 32, Y: 16, Width: 16, Height: 16}}, ts.SolidRects())
}

func TestTileSpace_DrivesStep(t *testing.T) {
	ts, err := NewTileSpace(10, 5, 16)
	require.NoError(t, err)
	for x := 0; x < 10; x++ {
		ts.AddSolid(x, 1)
	}

	body, err := collision.NewBody(40, 30, 16, 15)
	require.NoError(t, err)

	step := collision.NewStep(ts, body.Width, body.Height)
	res := step.Run(body)

	assert.True(t, res.Landed)
	assert.Equal(t, 32.0, body.Y)
	assert.True(t, body.Grounded)
}
