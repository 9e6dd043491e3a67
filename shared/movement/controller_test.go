package movement

import (
	"testing"

	"github.com/automoto/pete/shared/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var peteParams = Params{MaxXSpeed: 2, MaxYSpeed: 2, MaxJumpDistance: 45}

func newBody(t *testing.T) *collision.Body {
	t.Helper()
	b, err := collision.NewBody(100, 0, 16, 15)
	require.NoError(t, err)
	b.Land()
	return b
}

func TestController_Horizontal(t *testing.T) {
	tests := []struct {
		name      string
		in        Intent
		wantVX    float64
		wantRight bool
	}{
		{"idle", Intent{}, 0, true},
		{"right", Intent{Right: true}, 2, true},
		{"left", Intent{Left: true}, -2, false},
		{"both cancel", Intent{Left: true, Right: true}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(peteParams)
			b := newBody(t)

			c.Update(b, tt.in, 1.0/60)

			assert.Equal(t, tt.wantVX, b.VelocityX)
			assert.Equal(t, tt.wantRight, c.FacingRight)
		})
	}
}

func TestController_FallsWithoutJump(t *testing.T) {
	c := NewController(peteParams)
	b := newBody(t)

	jumped := c.Update(b, Intent{}, 1.0/60)

	assert.False(t, jumped)
	assert.Equal(t, -2.0, b.VelocityY)
	assert.False(t, c.BlockJump)
}

func TestController_JumpArc(t *testing.T) {
	c := NewController(peteParams)
	b := newBody(t)

	starts := 0
	rising := 0
	for i := 0; i < 40; i++ {
		if c.Update(b, Intent{Jump: true}, 1.0/60) {
			starts++
		}
		if b.VelocityY > 0 {
			rising++
		}
		b.Integrate()
	}

	// 23 rising steps take JumpDistance to 46 > 45, then the jump is blocked.
	assert.Equal(t, 1, starts)
	assert.Equal(t, 23, rising)
	assert.True(t, c.BlockJump)
	assert.Equal(t, -2.0, b.VelocityY)
}

func TestController_ReleaseBlocksMidAir(t *testing.T) {
	c := NewController(peteParams)
	b := newBody(t)

	c.Update(b, Intent{Jump: true}, 0)
	b.Integrate()
	c.Update(b, Intent{}, 0)
	b.Integrate()
	jumped := c.Update(b, Intent{Jump: true}, 0)

	assert.False(t, jumped)
	assert.True(t, c.BlockJump)
	assert.Equal(t, -2.0, b.VelocityY)
}

func TestController_LandingRearmsJump(t *testing.T) {
	c := NewController(peteParams)
	b := newBody(t)

	c.Update(b, Intent{Jump: true}, 0)
	b.Integrate()
	c.Update(b, Intent{}, 0)
	b.Integrate()
	require.True(t, c.BlockJump)

	b.Land()
	jumped := c.Update(b, Intent{Jump: true}, 0)

	assert.True(t, jumped)
	assert.Equal(t, 2.0, b.VelocityY)
	assert.Equal(t, 2.0, c.JumpDistance)
}

func TestController_State(t *testing.T) {
	c := NewController(peteParams)
	b := newBody(t)

	assert.Equal(t, Standing, c.State(b))
	b.VelocityX = 2
	assert.Equal(t, Walking, c.State(b))
	b.Grounded = false
	assert.Equal(t, Airborne, c.State(b))
}

func TestController_StateTimeAccumulates(t *testing.T) {
	c := NewController(peteParams)
	b := newBody(t)

	c.Update(b, Intent{}, 0.25)
	c.Update(b, Intent{}, 0.5)

	assert.InDelta(t, 0.75, c.StateTime, 1e-9)
}
