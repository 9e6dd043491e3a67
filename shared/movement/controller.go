// Package movement turns directional and jump intent into body velocity.
package movement

import "github.com/automoto/pete/shared/collision"

// Intent is the input state for one step.
type Intent struct {
	Left, Right bool
	Jump        bool
}

// Params are the per-frame speeds of a character.
type Params struct {
	MaxXSpeed       float64
	MaxYSpeed       float64
	MaxJumpDistance float64
}

// Controller holds the jump state of one character. A jump rises at MaxYSpeed
// while the button is held, until MaxJumpDistance has been climbed; after
// that (or once the button is released) the character falls at MaxYSpeed
// until it lands.
type Controller struct {
	Params       Params
	JumpDistance float64
	BlockJump    bool
	FacingRight  bool
	// StateTime accumulates frame delta for animation.
	StateTime float64
}

func NewController(p Params) *Controller {
	return &Controller{Params: p, FacingRight: true}
}

// Update sets b's velocity from in and reports whether a jump started this
// step. Landing from the previous step, recorded on the body, resets the
// jump first.
func (c *Controller) Update(b *collision.Body, in Intent, dt float64) (jumped bool) {
	c.StateTime += dt
	if b.Grounded {
		c.Landed()
	}

	switch {
	case in.Right && !in.Left:
		b.VelocityX = c.Params.MaxXSpeed
		c.FacingRight = true
	case in.Left && !in.Right:
		b.VelocityX = -c.Params.MaxXSpeed
		c.FacingRight = false
	default:
		b.VelocityX = 0
	}

	if in.Jump && !c.BlockJump {
		jumped = b.VelocityY != c.Params.MaxYSpeed
		b.VelocityY = c.Params.MaxYSpeed
		c.JumpDistance += b.VelocityY
		c.BlockJump = c.JumpDistance > c.Params.MaxJumpDistance
	} else {
		b.VelocityY = -c.Params.MaxYSpeed
		c.BlockJump = c.JumpDistance > 0
	}
	return jumped
}

// Landed re-arms the jump.
func (c *Controller) Landed() {
	c.BlockJump = false
	c.JumpDistance = 0
}

// State is the animation state derived from the last Update.
type State int

const (
	Standing State = iota
	Walking
	Airborne
)

func (c *Controller) State(b *collision.Body) State {
	if !b.Grounded {
		return Airborne
	}
	if b.VelocityX != 0 {
		return Walking
	}
	return Standing
}
