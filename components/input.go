package components

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. Edges are computed by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Held reports whether action is down this frame.
func (in *InputData) Held(action cfg.ActionID) bool {
	return in.Current[action]
}

// JustPressed reports whether action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

// JustReleased reports whether action went up this frame.
func (in *InputData) JustReleased(action cfg.ActionID) bool {
	return !in.Current[action] && in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
