package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VisualData is the actor's displayed state, eased toward the ability
// feedback.
type VisualData struct {
	Color       color.RGBA
	Alpha       float64
	HeightScale float64
	Target      float64
	Tween       *gween.Tween
}

var Visual = donburi.NewComponentType[VisualData]()
