package systems

import (
	"github.com/automoto/doomerang-abilities/ability"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/rs/zerolog/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// actorBody exposes an actor's physics component to its ability model.
type actorBody struct {
	physics *components.PhysicsData
	object  *resolv.Object
}

func (b actorBody) Contacts() ability.Contacts {
	return b.physics.Contacts
}

func (b actorBody) Velocity() (float64, float64) {
	return b.physics.SpeedX, b.physics.SpeedY
}

func (b actorBody) SetVelocityX(v float64) {
	b.physics.SpeedX = v
}

func (b actorBody) SetVelocityY(v float64) {
	b.physics.SpeedY = v
}

func (b actorBody) Bounds() *resolv.Object {
	return b.object
}

// UpdateAbilities feeds this tick's input to every actor's model and runs it.
// Must run after UpdateInput and before UpdatePhysics.
func UpdateAbilities(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	snapshot := AbilityInput(input)
	walls := collectWalls(ecs)
	deltaMs := tickSeconds() * 1000

	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		if input.JustPressed(cfg.ActionReset) {
			ResetActor(ecs, e)
			return
		}

		data := components.Ability.Get(e)
		body := actorBody{
			physics: components.Physics.Get(e),
			object:  components.Object.Get(e).Object,
		}

		data.Model.SetInput(snapshot)
		data.Feedback = data.Model.Update(deltaMs, body, walls)
		data.Model.EndFrame()

		for _, ev := range data.Feedback.Events {
			log.Trace().Str("event", string(ev.Kind)).Str("detail", ev.Detail).Msg("ability event")
		}
	})
}

// collectWalls returns the wall colliders in level order.
func collectWalls(ecs *ecs.ECS) []*resolv.Object {
	var walls []*resolv.Object
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		walls = append(walls, components.Object.Get(e).Object)
	})
	return walls
}

// ResetActor returns an actor to the level spawn with a fresh model state.
func ResetActor(ecs *ecs.ECS, e *donburi.Entry) {
	x, y := cfg.Actor.SpawnX, cfg.Actor.SpawnY
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		spawn := components.Level.Get(levelEntry).Level.Spawn
		x, y = spawn.X, spawn.Y
	}

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.Contacts = ability.Contacts{}
	physics.OnGround = nil

	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.H = physics.BaseHeight
	obj.Update()

	data := components.Ability.Get(e)
	data.Model.Reset()
	data.Feedback = ability.Feedback{HeightScale: 1}

	log.Info().Float64("x", x).Float64("y", y).Msg("actor reset")
}
