// Package ability is the per-actor movement ability core. A Model owns four
// layered state machines, the timers that gate them and the energy resource,
// and turns one tick of input plus contact flags into velocity requests and
// display feedback.
package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/energy"
	"github.com/automoto/doomerang-abilities/shared/fsm"
	"github.com/rs/zerolog"
)

// Tuning is the live read path for numbers and feature flags.
type Tuning interface {
	Num(key string) float64
	Enabled(flag string) bool
}

type (
	movementMachine = fsm.Machine[cfg.MovementState, string]
	actionMachine   = fsm.Machine[cfg.ActionState, string]
	boostMachine    = fsm.Machine[cfg.BoostState, string]
	chargeMachine   = fsm.Machine[cfg.ChargeState, string]
)

// Transition causes recorded in the history and the log.
const (
	causeSensing   = "sensing"
	causeJump      = "jump"
	causeSettle    = "settle"
	causeBoostKey  = "boost-key"
	causeDashArm   = "dash-arm"
	causeActivate  = "activate"
	causeNoEnergy  = "no-energy"
	causeReleased  = "released"
	causeExpired   = "expired"
	causeDisabled  = "disabled"
	causeConsumed  = "consumed"
	causeHold      = "hold"
	causeCharged   = "charged"
	causeWallSlide = "wall-contact"
	causeWallLost  = "wall-lost"
	causeWallSwap  = "wall-swap"
	causeWallKick  = "wall-kick"
	causeWallRun   = "wall-run"
	causeDash      = "dash"
	causeSlide     = "slide"
	causeSlideJump = "slide-jump"
	causeCrouch    = "crouch"
)

// Model is one actor's ability state. It is not safe for concurrent use; the
// host drives it from its own tick loop.
type Model struct {
	tuning Tuning
	energy *energy.Model
	log    zerolog.Logger

	movement *movementMachine
	action   *actionMachine
	boost    *boostMachine
	charge   *chargeMachine

	boostWindow      fsm.TimedFlag
	slideTimer       fsm.TimedFlag
	jumpBuffer       fsm.TimedFlag
	coyote           fsm.TimedFlag
	wallKickMomentum fsm.TimedFlag
	dashTimer        fsm.TimedFlag
	dashCooldown     fsm.TimedFlag
	airMomentum      fsm.TimedFlag
	flashHold        fsm.TimedFlag

	input   Input
	body    Body
	now     float64
	facing  float64
	history History

	// boost and charge
	armedCost      float64
	armedWindow    float64
	armedByKey     bool
	sprinting      bool
	chargeTime     float64
	doubleJumpUsed bool
	dampableJump   bool
	justJumped     bool

	// wall contact
	wallSide           cfg.WallSide
	canWallKick        bool
	wallRunCount       int
	boostedWallContact bool

	// exclusive actions
	slideDir     float64
	slideSpeed   float64
	slideBoosted bool
	dashDir      float64
	dashSpeed    float64
	dashBoosted  bool
	airDash      bool

	// double tap
	lastTap      [2]float64
	tapped       [2]bool
	doubleTapDir float64

	// feedback
	heightScale float64
	flashTag    string
	events      []Event
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes transition logging to l. Models are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// New builds a grounded, idle model reading its numbers from tuning.
func New(tuning Tuning, opts ...Option) *Model {
	m := &Model{
		tuning:   tuning,
		energy:   energy.New(tuning),
		log:      zerolog.Nop(),
		movement: fsm.New[cfg.MovementState, string](cfg.Grounded),
		action:   fsm.New[cfg.ActionState, string](cfg.StateIdle),
		boost:    fsm.New[cfg.BoostState, string](cfg.BoostIdle),
		charge:   fsm.New[cfg.ChargeState, string](cfg.ChargeIdle),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.registerHooks()
	m.resetFields()
	return m
}

// Reset returns the model to its initial grounded, idle state with energy at
// base. No enter or exit hooks run.
func (m *Model) Reset() {
	m.movement.Reset(cfg.Grounded)
	m.action.Reset(cfg.StateIdle)
	m.boost.Reset(cfg.BoostIdle)
	m.charge.Reset(cfg.ChargeIdle)
	m.energy.Reset()
	m.history.Clear()
	m.resetFields()
	m.log.Debug().Msg("ability model reset")
}

func (m *Model) resetFields() {
	for _, f := range m.timers() {
		f.Stop()
	}
	m.input = Input{}
	m.body = nil
	m.now = 0
	m.facing = cfg.DirectionRight
	m.armedCost, m.armedWindow, m.armedByKey = 0, 0, false
	m.sprinting = false
	m.chargeTime = 0
	m.doubleJumpUsed = false
	m.dampableJump = false
	m.justJumped = false
	m.wallSide = cfg.WallNone
	m.canWallKick = true
	m.wallRunCount = 0
	m.boostedWallContact = false
	m.slideDir, m.slideSpeed, m.slideBoosted = 0, 0, false
	m.dashDir, m.dashSpeed, m.dashBoosted, m.airDash = 0, 0, false, false
	m.lastTap = [2]float64{}
	m.tapped = [2]bool{}
	m.doubleTapDir = 0
	m.heightScale = 1
	m.flashTag = ""
	m.events = m.events[:0]
}

func (m *Model) timers() []*fsm.TimedFlag {
	return []*fsm.TimedFlag{
		&m.boostWindow, &m.slideTimer, &m.jumpBuffer, &m.coyote,
		&m.wallKickMomentum, &m.dashTimer, &m.dashCooldown, &m.airMomentum,
		&m.flashHold,
	}
}

func (m *Model) Movement() cfg.MovementState { return m.movement.Current() }
func (m *Model) Action() cfg.ActionState     { return m.action.Current() }
func (m *Model) Boost() cfg.BoostState       { return m.boost.Current() }
func (m *Model) Charge() cfg.ChargeState     { return m.charge.Current() }
func (m *Model) WallSide() cfg.WallSide      { return m.wallSide }
func (m *Model) Facing() float64             { return m.facing }
func (m *Model) Energy() *energy.Model       { return m.energy }
func (m *Model) History() *History           { return &m.history }

// Grounded reports the sensed movement state.
func (m *Model) Grounded() bool {
	return m.movement.Is(cfg.Grounded)
}

// CanWallKick is cleared by a kick and restored on landing.
func (m *Model) CanWallKick() bool {
	return m.canWallKick
}

func (m *Model) WallRunCount() int {
	return m.wallRunCount
}

func (m *Model) DoubleJumpUsed() bool {
	return m.doubleJumpUsed
}

// Timers exposes the remaining time of each countdown, keyed by name.
func (m *Model) Timers() map[string]float64 {
	return map[string]float64{
		"boost":            m.boostWindow.Remaining(),
		"slide":            m.slideTimer.Remaining(),
		"jumpBuffer":       m.jumpBuffer.Remaining(),
		"coyote":           m.coyote.Remaining(),
		"wallKickMomentum": m.wallKickMomentum.Remaining(),
		"dash":             m.dashTimer.Remaining(),
		"dashCooldown":     m.dashCooldown.Remaining(),
		"airMomentum":      m.airMomentum.Remaining(),
	}
}

// engaged reports whether a boost or charge state is currently held, which
// chaining requires.
func (m *Model) engaged() bool {
	return m.boost.Is(cfg.BoostActive) || !m.charge.Is(cfg.ChargeIdle)
}

func (m *Model) chain(action energy.ChainAction) {
	if m.energy.PerformChain(action, m.engaged()) {
		m.emit(EventChain, action.String())
		m.log.Debug().
			Str("action", action.String()).
			Float64("energy", m.energy.Current()).
			Msg("chain extended energy")
	}
}
