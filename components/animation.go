package components

import (
	"github.com/automoto/pete/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData holds Pete's frames and the animations that index them.
type AnimationData struct {
	Frames   []*ebiten.Image
	Standing *animations.Animation
	Walking  *animations.Animation
	JumpUp   *animations.Animation
	JumpDown *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
