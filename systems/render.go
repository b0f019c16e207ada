package systems

import (
	"image/color"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawActors draws each actor as a box in its tag color, scaled from the feet
// by the eased height.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		physics := components.Physics.Get(e)
		visual := components.Visual.Get(e)

		h := physics.BaseHeight * visual.HeightScale
		y := gamemath.Bottom(o.Object) - h

		c := visual.Color
		c.A = uint8(255 * visual.Alpha)
		vector.DrawFilledRect(screen, float32(o.X), float32(y), float32(o.W), float32(h), c, false)

		// facing marker
		facing := components.Ability.Get(e).Feedback.Facing
		eyeX := o.X + o.W/2 + facing*o.W/4 - 2
		vector.DrawFilledRect(screen, float32(eyeX), float32(y+4), 4, 4, color.White, false)
	})
}
