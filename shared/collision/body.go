package collision

import (
	"errors"
	"fmt"
)

var ErrInvalidBody = errors.New("collision: invalid body")

// Body is the player's collision rectangle plus the velocity applied on the
// next Integrate. Width and Height never change after NewBody.
type Body struct {
	X, Y          float64
	Width, Height float64
	VelocityX     float64
	VelocityY     float64
	Grounded      bool
}

// NewBody validates the initial geometry. NaN or infinite coordinates and
// non-positive sizes are rejected so they never reach the resolver.
func NewBody(x, y, width, height float64) (*Body, error) {
	if !finite(x, y, width, height) {
		return nil, fmt.Errorf("%w: non-finite geometry (%v, %v, %v, %v)", ErrInvalidBody, x, y, width, height)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %vx%v", ErrInvalidBody, width, height)
	}
	return &Body{X: x, Y: y, Width: width, Height: height}, nil
}

func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func (b *Body) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

// Land puts the body on the ground and cancels vertical motion.
func (b *Body) Land() {
	b.Grounded = true
	b.VelocityY = 0
}

// Integrate moves the body by its velocity. Ground contact is cleared; it is
// re-established by the bounds clamp or the resolver in the same step.
func (b *Body) Integrate() {
	b.X += b.VelocityX
	b.Y += b.VelocityY
	b.Grounded = false
}
