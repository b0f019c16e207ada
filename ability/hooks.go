package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/fsm"
)

type namedState interface {
	comparable
	String() string
}

// observe records every committed transition of machine in the history and
// the debug log.
func observe[S namedState](m *Model, name string, machine *fsm.Machine[S, string]) {
	machine.OnTransition(func(from, to S, cause string) {
		m.history.add(Transition{
			Machine: name,
			From:    from.String(),
			To:      to.String(),
			Cause:   cause,
			At:      m.now,
		})
		m.log.Debug().
			Str("machine", name).
			Stringer("from", from).
			Stringer("to", to).
			Str("cause", cause).
			Float64("at", m.now).
			Msg("transition")
	})
}

func (m *Model) registerHooks() {
	observe(m, "movement", m.movement)
	observe(m, "action", m.action)
	observe(m, "boost", m.boost)
	observe(m, "charge", m.charge)

	m.movement.OnEnter(cfg.Grounded, func(_, _ cfg.MovementState, _ string) {
		m.canWallKick = true
		m.wallRunCount = 0
		m.boostedWallContact = false
		m.doubleJumpUsed = false
		m.dampableJump = false
		m.coyote.Stop()
		m.airMomentum.Stop()
		m.emit(EventLand, "")
	})
	m.movement.OnEnter(cfg.Airborne, func(_, _ cfg.MovementState, cause string) {
		// Only walking off a ledge grants coyote time; a jump never does.
		if cause == causeSensing {
			m.coyote.Start(m.tuning.Num(cfg.KeyJumpCoyote))
		}
	})

	m.action.OnExit(cfg.StateWallSliding, func(_, _ cfg.ActionState, _ string) {
		m.wallSide = cfg.WallNone
	})
	m.action.OnEnter(cfg.StateSliding, func(_, _ cfg.ActionState, _ string) {
		m.heightScale = m.tuning.Num(cfg.KeySlideHeightScale)
	})
	m.action.OnExit(cfg.StateSliding, func(_, _ cfg.ActionState, _ string) {
		m.slideTimer.Stop()
		m.heightScale = 1
	})
	m.action.OnEnter(cfg.StateCrouching, func(_, _ cfg.ActionState, _ string) {
		m.heightScale = m.tuning.Num(cfg.KeyMoveCrouchFactor)
	})
	m.action.OnExit(cfg.StateCrouching, func(_, _ cfg.ActionState, _ string) {
		m.heightScale = 1
	})
	m.action.OnExit(cfg.StateDashing, func(_, _ cfg.ActionState, _ string) {
		m.dashTimer.Stop()
		m.armAfterDash()
	})
	m.action.OnEnter(cfg.StateBoostJumping, func(_, _ cfg.ActionState, _ string) {
		m.flash(cfg.TagBoostJump)
	})
	m.action.OnEnter(cfg.StateChargeJumping, func(_, _ cfg.ActionState, _ string) {
		m.flash(cfg.TagChargeJump)
	})

	m.boost.OnEnter(cfg.BoostActive, func(_, _ cfg.BoostState, _ string) {
		m.boostWindow.Start(m.armedWindow)
		m.armedCost, m.armedWindow, m.armedByKey = 0, 0, false
		m.charge.TryTransition(cfg.ChargeIdle, nil, causeActivate)
		m.emit(EventBoost, "")
	})
	m.boost.OnExit(cfg.BoostActive, func(_, _ cfg.BoostState, _ string) {
		m.boostWindow.Stop()
	})
	m.boost.OnEnter(cfg.BoostIdle, func(_, _ cfg.BoostState, _ string) {
		m.armedCost, m.armedWindow, m.armedByKey = 0, 0, false
	})

	m.charge.OnEnter(cfg.ChargeCharging, func(_, _ cfg.ChargeState, _ string) {
		m.chargeTime = 0
	})
	m.charge.OnEnter(cfg.ChargeIdle, func(_, _ cfg.ChargeState, _ string) {
		m.chargeTime = 0
	})
	m.charge.OnEnter(cfg.ChargeFull, func(_, _ cfg.ChargeState, _ string) {
		m.flash(cfg.TagChargeFull)
	})
}

// armAfterDash hands the actor a short boost window once a dash completes so
// a jump on landing can chain. An already active window is restarted instead
// of armed again.
func (m *Model) armAfterDash() {
	if !m.tuning.Enabled(cfg.FlagCanBoost) {
		return
	}
	window := m.tuning.Num(cfg.KeyDashBoostDuration)
	if m.boost.Is(cfg.BoostActive) {
		if window > m.boostWindow.Remaining() {
			m.boostWindow.Start(window)
		}
		return
	}
	m.arm(0, window, false, causeDashArm)
}

// arm moves boost to Armed with the cost and window activation will use.
func (m *Model) arm(cost, window float64, byKey bool, cause string) {
	if m.boost.Is(cfg.BoostActive) {
		return
	}
	m.armedCost, m.armedWindow, m.armedByKey = cost, window, byKey
	m.boost.TryTransition(cfg.BoostArmed, nil, cause)
}
