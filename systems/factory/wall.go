package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid the actor can slide on, kick off and run up.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateGround creates a plain solid: floors, ceilings and ledges.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ground

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}
