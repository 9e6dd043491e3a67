package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	Collected  int
	Best       int
	NewBest    bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
