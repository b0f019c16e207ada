package factory

import (
	"github.com/automoto/doomerang-abilities/ability"
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns an actor whose feet rest at (x, y+height) and wires a
// fresh ability model to the shared tuning.
func CreateActor(ecs *ecs.ECS, x, y float64, tuning *cfg.Tuning, logger zerolog.Logger) *donburi.Entry {
	actor := archetypes.Actor.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Actor.CollisionWidth, cfg.Actor.CollisionHeight, tags.ResolvActor)
	obj.Data = actor
	components.Object.SetValue(actor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(actor, components.PhysicsData{
		BaseHeight: cfg.Actor.CollisionHeight,
	})

	model := ability.New(tuning, ability.WithLogger(logger.With().Uint64("actor", uint64(actor.Entity())).Logger()))
	components.Ability.SetValue(actor, components.AbilityData{Model: model})

	components.Visual.SetValue(actor, components.VisualData{
		Color:       cfg.ColorFor(cfg.TagNormal),
		Alpha:       1,
		HeightScale: 1,
		Target:      1,
	})

	return actor
}
