package factory

import (
	"github.com/automoto/pete/archetypes"
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centres the view on the world, as at the start of a level.
func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2),
	})
}
