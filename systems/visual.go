package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVisuals eases each actor's displayed height toward the model's height
// scale and copies its tag color and energy intensity.
func UpdateVisuals(ecs *ecs.ECS) {
	dt := float32(tickSeconds())
	components.Visual.Each(ecs.World, func(e *donburi.Entry) {
		visual := components.Visual.Get(e)
		feedback := components.Ability.Get(e).Feedback
		updateVisual(visual, feedback.HeightScale, feedback.Intensity, dt)
		visual.Color = feedback.Color
	})
}

func updateVisual(visual *components.VisualData, heightScale, intensity float64, dt float32) {
	if heightScale <= 0 {
		heightScale = 1
	}
	if heightScale != visual.Target {
		visual.Target = heightScale
		visual.Tween = gween.New(float32(visual.HeightScale), float32(heightScale), cfg.Visual.HeightTweenSecs, ease.OutQuad)
	}
	if visual.Tween != nil {
		current, done := visual.Tween.Update(dt)
		visual.HeightScale = float64(current)
		if done {
			visual.Tween = nil
		}
	}

	visual.Alpha = cfg.Visual.MinAlpha + (1-cfg.Visual.MinAlpha)*intensity
}
