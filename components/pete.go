package components

import (
	"github.com/automoto/pete/shared/collision"
	"github.com/automoto/pete/shared/movement"
	"github.com/yohamta/donburi"
)

type PeteData struct {
	Controller *movement.Controller
	// LastProbe holds the cells the collision step looked at this frame.
	LastProbe []collision.Candidate
	Landed    bool
}

var Pete = donburi.NewComponentType[PeteData]()
