package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the level and spawns its space, ground and walls.
// Walls are created in level order, which is the order wall contact checks
// them in.
func CreateLevel(ecs *ecs.ECS, level *leveldata.LevelData, path string) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level: level, Path: path})

	CreateSpace(ecs, level.MapWidth, level.MapHeight, CellSize, CellSize)
	for _, r := range level.Ground {
		CreateGround(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Walls {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	return entry
}
