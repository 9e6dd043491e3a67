package components

import "github.com/yohamta/donburi"

type DebugData struct {
	Overlay bool
}

var Debug = donburi.NewComponentType[DebugData]()
