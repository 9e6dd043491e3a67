package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds_Clamp(t *testing.T) {
	wb := Bounds{Width: 320}

	tests := []struct {
		name       string
		x, y       float64
		wantX      float64
		wantY      float64
		wantLanded bool
	}{
		{"inside", 100, 50, 100, 50, false},
		{"left of level", -3.5, 50, 0, 50, false},
		{"right of level", 310, 50, 304, 50, false},
		{"below floor", 100, -2, 100, 0, true},
		{"below floor and left", -1, -1, 0, 0, true},
		{"flush right edge", 304, 0, 304, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBody(tt.x, tt.y, 16, 16)
			require.NoError(t, err)
			b.VelocityY = -2

			landed := wb.Clamp(b)

			assert.Equal(t, tt.wantX, b.X)
			assert.Equal(t, tt.wantY, b.Y)
			assert.Equal(t, tt.wantLanded, landed)
			assert.Equal(t, tt.wantLanded, b.Grounded)
			if tt.wantLanded {
				assert.Zero(t, b.VelocityY)
			}
		})
	}
}

func TestBoundsFor(t *testing.T) {
	g, err := NewGrid(40, 30, 16)
	require.NoError(t, err)
	assert.Equal(t, 640.0, BoundsFor(g).Width)
	assert.Equal(t, 640.0, LevelWidth(g))
}

func TestNewBody_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
	}{
		{"nan x", math.NaN(), 0, 16, 16},
		{"inf y", 0, math.Inf(1), 16, 16},
		{"zero width", 0, 0, 0, 16},
		{"negative height", 0, 0, 16, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(tt.x, tt.y, tt.w, tt.h)
			assert.ErrorIs(t, err, ErrInvalidBody)
		})
	}
}

func TestBody_IntegrateClearsGround(t *testing.T) {
	b, err := NewBody(10, 20, 16, 15)
	require.NoError(t, err)
	b.Land()
	b.VelocityX = 2
	b.VelocityY = -2

	b.Integrate()

	assert.Equal(t, 12.0, b.X)
	assert.Equal(t, 18.0, b.Y)
	assert.False(t, b.Grounded)
}

func TestNewGrid_Rejects(t *testing.T) {
	for _, size := range []float64{0, -16, math.NaN(), math.Inf(1)} {
		_, err := NewGrid(4, 4, size)
		assert.ErrorIs(t, err, ErrInvalidGrid, "cell size %v", size)
	}

	_, err := NewGrid(-1, 4, 16)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestGrid_SolidOutOfRange(t *testing.T) {
	g, err := NewGrid(3, 2, 16)
	require.NoError(t, err)
	g.SetSolid(2, 1, true)
	g.SetSolid(9, 9, true)

	assert.True(t, g.Solid(2, 1))
	assert.False(t, g.Solid(0, 0))
	assert.False(t, g.Solid(-1, 1))
	assert.False(t, g.Solid(3, 1))
	assert.False(t, g.Solid(2, 2))
	assert.False(t, g.Solid(9, 9))
}

func TestBody_SetPositionKeepsMotion(t *testing.T) {
	b, err := NewBody(10, 20, 16, 15)
	require.NoError(t, err)
	b.VelocityX = 2
	b.Land()

	b.SetPosition(100, 48)

	assert.Equal(t, Rect{X: 100, Y: 48, Width: 16, Height: 15}, b.Rect())
	assert.Equal(t, 2.0, b.VelocityX)
	assert.True(t, b.Grounded)
}
