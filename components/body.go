package components

import (
	"github.com/automoto/pete/shared/collision"
	"github.com/yohamta/donburi"
)

// Body is the axis-aligned box the collision step moves. Position is the
// bottom-left corner in y-up world space.
var Body = donburi.NewComponentType[collision.Body]()
