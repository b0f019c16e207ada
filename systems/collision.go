package systems

import (
	"math"

	"github.com/automoto/doomerang-abilities/ability"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every actor by its speed, stops it at solids and
// refreshes the contact flags the ability model senses on the next tick.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := tickSeconds()
	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resizeCollider(physics, obj, components.Ability.Get(e).Feedback.HeightScale)
		resolveHorizontal(obj, physics.SpeedX*dt)
		resolveVertical(physics, obj, physics.SpeedY*dt)
		physics.Contacts = senseContacts(obj, cfg.Physics.ContactReach)
		physics.OnGround = groundUnder(obj, cfg.Physics.ContactReach)
	})
}

// nearbySolids uses the space as a broadphase for a move of (dx, dy).
func nearbySolids(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags.ResolvSolid)
}

// resolveHorizontal leaves SpeedX alone on a block so the ability model can
// still read the approach speed when the actor meets a wall.
func resolveHorizontal(obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	moved, _ := gamemath.SweepX(obj, dx, nearbySolids(obj, dx, 0))
	obj.X += moved
}

func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}
	moved, blocked := gamemath.SweepY(obj, dy, nearbySolids(obj, 0, dy))
	obj.Y += moved
	if blocked {
		physics.SpeedY = 0
	}
}

// senseContacts checks each side for a solid within reach.
func senseContacts(obj *resolv.Object, reach float64) ability.Contacts {
	var solids []*resolv.Object
	seen := make(map[*resolv.Object]struct{})
	for _, offset := range [][2]float64{{0, reach}, {-reach, 0}, {reach, 0}} {
		for _, s := range nearbySolids(obj, offset[0], offset[1]) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			solids = append(solids, s)
		}
	}

	down, left, right := gamemath.Touching(obj, solids, reach)
	return ability.Contacts{Down: down, Left: left, Right: right}
}

// resizeCollider follows the model's height scale. Shrinking is immediate;
// growing waits for headroom.
func resizeCollider(physics *components.PhysicsData, obj *resolv.Object, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	target := physics.BaseHeight * scale
	switch {
	case math.Abs(target-obj.H) < 0.01:
		return
	case target < obj.H:
		gamemath.ResizeHeightAnchored(obj, target)
	default:
		if gamemath.Headroom(obj, target, nearbySolids(obj, 0, obj.H-target)) {
			gamemath.ResizeHeightAnchored(obj, target)
		}
	}
}

// groundUnder returns the solid the actor stands on, if any.
func groundUnder(obj *resolv.Object, reach float64) *resolv.Object {
	for _, s := range nearbySolids(obj, 0, reach) {
		if obj.X+obj.W > s.X && obj.X < s.X+s.W && math.Abs(s.Y-gamemath.Bottom(obj)) <= reach {
			return s
		}
	}
	return nil
}
