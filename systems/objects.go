package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved actors in the space. Ground and walls are
// static and stay where the factory put them.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}
