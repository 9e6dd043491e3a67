package tags

import "github.com/yohamta/donburi"

var (
	Pete = donburi.NewTag().SetName("Pete")
)
