package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BobData drives the shared up-and-down offset of every acorn.
type BobData struct {
	Sequence *gween.Sequence
	Offset   float32
}

var Bob = donburi.NewComponentType[BobData]()
