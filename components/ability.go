package components

import (
	"github.com/automoto/doomerang-abilities/ability"
	"github.com/yohamta/donburi"
)

// AbilityData holds an actor's ability model and what it reported on the last
// tick.
type AbilityData struct {
	Model    *ability.Model
	Feedback ability.Feedback
}

var Ability = donburi.NewComponentType[AbilityData]()
