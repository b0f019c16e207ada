package ability

import (
	"image/color"

	cfg "github.com/automoto/doomerang-abilities/config"
)

// EventKind names a one-shot occurrence reported in Feedback.
type EventKind string

const (
	EventJump       EventKind = "jump"
	EventDoubleJump EventKind = "double-jump"
	EventBoostJump  EventKind = "boost-jump"
	EventChargeJump EventKind = "charge-jump"
	EventWallKick   EventKind = "wall-kick"
	EventWallRun    EventKind = "wall-run"
	EventDash       EventKind = "dash"
	EventAirDash    EventKind = "air-dash"
	EventSlide      EventKind = "slide"
	EventBoost      EventKind = "boost"
	EventChain      EventKind = "chain"
	EventLand       EventKind = "land"
	EventShoot      EventKind = "shoot"
)

// Event is one occurrence during a tick. Detail carries the variant, such as
// the kick tag or the chained action.
type Event struct {
	Kind   EventKind
	Detail string
}

// flashDuration is how long a one-shot visual tag overrides the state tag.
const flashDuration = 150

// Feedback is what the rendering collaborator reads after a tick.
type Feedback struct {
	Movement cfg.MovementState
	Action   cfg.ActionState
	Boost    cfg.BoostState
	Charge   cfg.ChargeState
	WallSide cfg.WallSide
	Facing   float64

	Tag             string
	Color           color.RGBA
	EnergyPercent   float64
	Intensity       float64
	ChargePercent   float64
	SpeedMultiplier float64
	HeightScale     float64

	Events []Event
}

// Has reports whether an event of kind happened this tick.
func (f Feedback) Has(kind EventKind) bool {
	for _, e := range f.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (m *Model) emit(kind EventKind, detail string) {
	m.events = append(m.events, Event{Kind: kind, Detail: detail})
}

func (m *Model) flash(tag string) {
	m.flashTag = tag
	m.flashHold.Start(flashDuration)
}

// Tag is the display tag for the current state. A recent one-shot tag wins
// over the steady state tag.
func (m *Model) Tag() string {
	if m.flashHold.Active() && m.flashTag != "" {
		return m.flashTag
	}

	switch m.action.Current() {
	case cfg.StateDashing:
		switch {
		case m.airDash:
			return cfg.TagAirDash
		case m.dashBoosted:
			return cfg.TagBoostDash
		}
		return cfg.TagDash
	case cfg.StateSliding:
		if m.slideBoosted {
			return cfg.TagBoostSlide
		}
		return cfg.TagSlide
	case cfg.StateWallSliding:
		if m.boostedWallContact {
			return cfg.TagBoostWallSlide
		}
		return cfg.TagWallSlide
	}

	switch {
	case m.charge.Is(cfg.ChargeFull):
		return cfg.TagChargeFull
	case m.charge.Is(cfg.ChargeCharging):
		return cfg.TagChargeCharging
	case m.boost.Is(cfg.BoostActive):
		return cfg.TagBoostActive
	case m.boost.Is(cfg.BoostArmed):
		return cfg.TagBoostArmed
	case m.sprinting:
		return cfg.TagSprint
	}

	switch m.action.Current() {
	case cfg.StateCrouching:
		return cfg.TagCrouch
	case cfg.StateBoostJumping:
		return cfg.TagBoostJump
	case cfg.StateChargeJumping:
		return cfg.TagChargeJump
	case cfg.StateJumping, cfg.StateFalling:
		return cfg.TagJump
	case cfg.StateRunning:
		return cfg.TagRunning
	}
	return cfg.TagNormal
}

func (m *Model) HeightScale() float64 {
	return m.heightScale
}

func (m *Model) feedback() Feedback {
	tag := m.Tag()
	var events []Event
	if len(m.events) > 0 {
		events = append(events, m.events...)
	}
	return Feedback{
		Movement:        m.movement.Current(),
		Action:          m.action.Current(),
		Boost:           m.boost.Current(),
		Charge:          m.charge.Current(),
		WallSide:        m.wallSide,
		Facing:          m.facing,
		Tag:             tag,
		Color:           cfg.ColorFor(tag),
		EnergyPercent:   m.energy.Percent(),
		Intensity:       m.energy.Intensity(),
		ChargePercent:   m.ChargePercent(),
		SpeedMultiplier: m.SpeedMultiplier(),
		HeightScale:     m.heightScale,
		Events:          events,
	}
}
