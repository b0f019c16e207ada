package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed update step.
func tickSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdatePhysics applies gravity. Horizontal speed is owned by the ability
// model; the host only clamps the vertical range.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		applyGravity(physics, dt)
	})
}

func applyGravity(physics *components.PhysicsData, dt float64) {
	physics.SpeedY += cfg.Physics.Gravity * dt
	physics.SpeedY = gamemath.Clamp(physics.SpeedY, cfg.Physics.MaxRiseSpeed, cfg.Physics.MaxFallSpeed)
}
