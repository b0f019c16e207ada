package systems

import (
	"image/color"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	groundColor     = color.RGBA{100, 100, 100, 255}
	wallColor       = color.RGBA{140, 140, 160, 255}
	backgroundColor = color.RGBA{20, 20, 28, 255}
)

// DrawLevel fills the background and draws ground and wall solids.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), groundColor, false)
	})
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), wallColor, false)
	})
}
