package ability

import (
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Input is one tick's input snapshot. Held flags describe the current state
// of a control; Pressed and Released flags are edges that EndFrame clears.
type Input struct {
	Left, Right, Up, Down bool
	Jump, Boost           bool

	JumpPressed  bool
	JumpReleased bool
	BoostPressed bool
	DashPressed  bool
	ShootPressed bool
	DownPressed  bool
	LeftPressed  bool
	RightPressed bool
}

// Direction folds the horizontal held flags into -1, 0 or 1.
func (in Input) Direction() float64 {
	return gamemath.InputDirection(in.Left, in.Right)
}

func (in *Input) clearEdges() {
	in.JumpPressed = false
	in.JumpReleased = false
	in.BoostPressed = false
	in.DashPressed = false
	in.ShootPressed = false
	in.DownPressed = false
	in.LeftPressed = false
	in.RightPressed = false
}

// Contacts are the physics collaborator's touching flags for this tick.
type Contacts struct {
	Down, Left, Right bool
}

// Body is the externally owned physics body. The model reads contacts and
// velocity and only ever requests velocity changes.
type Body interface {
	Contacts() Contacts
	Velocity() (x, y float64)
	SetVelocityX(x float64)
	SetVelocityY(y float64)
	// Bounds is the actor's collision box used for wall contact.
	Bounds() *resolv.Object
}
