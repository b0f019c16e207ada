package config

// MovementState is the coarse environment state sensed from contact flags.
type MovementState int

const (
	Grounded MovementState = iota
	Airborne
	Submerged // reserved, never entered
)

func (s MovementState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case Submerged:
		return "submerged"
	}
	return "unknown"
}

// ActionState is what the body is doing this tick.
type ActionState int

const (
	StateIdle ActionState = iota
	StateRunning
	StateJumping
	StateFalling
	StateWallSliding
	StateCrouching
	StateDashing
	StateSliding
	StateBoostJumping
	StateChargeJumping
)

var actionNames = [...]string{
	StateIdle:          "idle",
	StateRunning:       "running",
	StateJumping:       "jumping",
	StateFalling:       "falling",
	StateWallSliding:   "wall-sliding",
	StateCrouching:     "crouching",
	StateDashing:       "dashing",
	StateSliding:       "sliding",
	StateBoostJumping:  "boost-jumping",
	StateChargeJumping: "charge-jumping",
}

func (s ActionState) String() string {
	if s < 0 || int(s) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[s]
}

// IsAirborneAction reports whether the state only makes sense off the ground.
func (s ActionState) IsAirborneAction() bool {
	switch s {
	case StateJumping, StateFalling, StateWallSliding, StateBoostJumping, StateChargeJumping:
		return true
	}
	return false
}

// BoostState layers on top of the action state.
type BoostState int

const (
	BoostIdle BoostState = iota
	BoostArmed
	BoostActive
)

func (s BoostState) String() string {
	switch s {
	case BoostIdle:
		return "idle"
	case BoostArmed:
		return "armed"
	case BoostActive:
		return "active"
	}
	return "unknown"
}

// ChargeState accumulates while the boost input is held.
type ChargeState int

const (
	ChargeIdle ChargeState = iota
	ChargeCharging
	ChargeFull
)

func (s ChargeState) String() string {
	switch s {
	case ChargeIdle:
		return "idle"
	case ChargeCharging:
		return "charging"
	case ChargeFull:
		return "full"
	}
	return "unknown"
}

// WallSide is the side of the actor a contacted wall is on.
type WallSide int

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	}
	return "none"
}

// Away returns the horizontal direction pointing away from the wall.
func (s WallSide) Away() float64 {
	switch s {
	case WallLeft:
		return DirectionRight
	case WallRight:
		return DirectionLeft
	}
	return 0
}
