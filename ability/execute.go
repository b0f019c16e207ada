package ability

import (
	"math"

	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/energy"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
)

// leaveGround consumes the jump intent and the coyote window.
func (m *Model) leaveGround() {
	m.jumpBuffer.Stop()
	m.coyote.Stop()
	m.justJumped = true
	m.movement.TryTransition(cfg.Airborne, nil, causeJump)
}

func (m *Model) jump() {
	fromSlide := m.action.Is(cfg.StateSliding)
	m.chain(energy.ChainJump)

	m.body.SetVelocityY(m.tuning.Num(cfg.KeyJumpVelocity))
	if fromSlide {
		m.body.SetVelocityX(m.slideSpeed * m.slideDir)
	}
	m.leaveGround()
	m.dampableJump = true
	m.action.TryTransition(cfg.StateJumping, nil, causeJump)
	m.emit(EventJump, "")
}

func (m *Model) boostJump() {
	fromSlide := m.action.Is(cfg.StateSliding)
	boosted := m.boost.Is(cfg.BoostActive)
	m.chain(energy.ChainJump)

	var vx float64
	carry := fromSlide && m.slideBoosted
	if fromSlide {
		vx = m.slideSpeed * m.slideDir
		boosted = boosted || carry
	} else {
		dir := m.input.Direction()
		if dir == 0 {
			dir = m.facing
		}
		m.facing = dir
		vx = m.tuning.Num(cfg.KeyBoostSpeed) * dir
	}
	m.body.SetVelocityY(m.tuning.Num(cfg.KeyBoostJumpVelocity))
	m.body.SetVelocityX(vx)

	m.consumeBoost()
	if boosted {
		m.airMomentum.Start(m.tuning.Num(cfg.KeyBoostAirMomentum))
	}
	if carry {
		m.carryBoost(m.tuning.Num(cfg.KeyBoostAirMomentum))
	}
	m.leaveGround()
	m.dampableJump = false
	m.action.TryTransition(cfg.StateBoostJumping, nil, causeJump)
	m.emit(EventBoostJump, "")
}

func (m *Model) chargeJump() {
	m.chain(energy.ChainJump)

	m.body.SetVelocityY(m.tuning.Num(cfg.KeyChargeJumpVelocity))
	m.body.SetVelocityX(0)
	m.charge.TryTransition(cfg.ChargeIdle, nil, causeConsumed)
	m.leaveGround()
	m.dampableJump = false
	m.action.TryTransition(cfg.StateChargeJumping, nil, causeJump)
	m.emit(EventChargeJump, "")
}

func (m *Model) doubleJump() {
	m.body.SetVelocityY(m.tuning.Num(cfg.KeyJumpVelocity) * m.tuning.Num(cfg.KeyDoubleJumpFactor))
	m.jumpBuffer.Stop()
	m.doubleJumpUsed = true
	m.dampableJump = true
	m.action.TryTransition(cfg.StateJumping, nil, causeJump)
	m.flash(cfg.TagDoubleJump)
	m.emit(EventDoubleJump, "")
}

// wallKick pushes off the contacted wall. A kick while still rising is the
// stronger-lift peak kick; otherwise the slide kick trades lift for push.
func (m *Model) wallKick() {
	_, vy := m.body.Velocity()
	away := m.wallSide.Away()
	jump := m.tuning.Num(cfg.KeyJumpVelocity)
	m.chain(energy.ChainWall)

	tag := cfg.TagWallSlideKick
	lift := jump * m.tuning.Num(cfg.KeyWallKickSlideJump)
	push := m.tuning.Num(cfg.KeyWallKickSlidePush)
	if vy < m.tuning.Num(cfg.KeyWallKickRisingVelocity) {
		tag = cfg.TagWallPeakKick
		lift = jump * m.tuning.Num(cfg.KeyWallKickPeakJump)
		push = m.tuning.Num(cfg.KeyWallKickPeakPush)
	}
	m.body.SetVelocityY(lift)
	m.body.SetVelocityX(push * away)

	m.canWallKick = false
	m.boostedWallContact = false
	m.jumpBuffer.Stop()
	m.wallKickMomentum.Start(m.tuning.Num(cfg.KeyWallKickMomentum))
	m.facing = away
	m.dampableJump = false
	m.action.TryTransition(cfg.StateJumping, nil, causeWallKick)
	m.flash(tag)
	m.emit(EventWallKick, tag)
}

// wallRun climbs the contacted wall from a boosted contact.
func (m *Model) wallRun() {
	toward := -m.wallSide.Away()
	m.chain(energy.ChainWall)

	m.body.SetVelocityY(m.tuning.Num(cfg.KeyJumpVelocity) * m.tuning.Num(cfg.KeyWallRunJumpFactor))
	m.body.SetVelocityX(m.tuning.Num(cfg.KeyBoostSpeed) * m.tuning.Num(cfg.KeyWallRunPushFactor) * toward)
	if m.boost.Is(cfg.BoostActive) {
		m.boostWindow.Extend(m.tuning.Num(cfg.KeyBoostAirMomentum))
	}

	m.wallRunCount++
	m.jumpBuffer.Stop()
	m.facing = toward
	m.dampableJump = false
	m.action.TryTransition(cfg.StateJumping, nil, causeWallRun)
	m.flash(cfg.TagWallRun)
	m.emit(EventWallRun, "")
}

func (m *Model) startSlide(dir float64) {
	m.slideBoosted = m.boost.Is(cfg.BoostActive)
	m.slideSpeed = m.tuning.Num(cfg.KeySlideSpeed)
	m.slideDir = dir
	m.consumeBoost()

	m.slideTimer.Start(m.tuning.Num(cfg.KeySlideDuration))
	m.facing = dir
	m.action.TryTransition(cfg.StateSliding, nil, causeSlide)
	m.body.SetVelocityX(m.slideSpeed * dir)
	m.body.SetVelocityY(0)
	m.emit(EventSlide, "")
}

// updateSlide holds slide velocity until the timer runs out, the ground is
// lost or the input opposes the slide. A buffered jump leaves the slide
// carrying its speed.
func (m *Model) updateSlide() {
	if m.tryGroundJump() {
		return
	}
	dir := m.input.Direction()
	switch {
	case !m.slideTimer.Active(), !m.Grounded(), dir != 0 && dir != m.slideDir:
		m.settleAction(causeSlide)
	default:
		m.body.SetVelocityX(m.slideSpeed * m.slideDir)
	}
}

func (m *Model) startDash(dir float64, air bool) {
	m.dashBoosted = m.boost.Is(cfg.BoostActive)
	m.chain(energy.ChainDash)

	speed := m.tuning.Num(cfg.KeyDashSpeed)
	duration := m.tuning.Num(cfg.KeyDashDuration)
	_, vy := m.body.Velocity()
	if air {
		speed = m.tuning.Num(cfg.KeyAirDashSpeed)
		duration = m.tuning.Num(cfg.KeyAirDashDuration)
		m.body.SetVelocityY(vy * m.tuning.Num(cfg.KeyAirDashVerticalKeep))
	} else {
		m.body.SetVelocityY(0)
	}
	m.body.SetVelocityX(speed * dir)

	m.dashDir, m.dashSpeed, m.airDash = dir, speed, air
	m.dashTimer.Start(duration)
	m.dashCooldown.Start(m.tuning.Num(cfg.KeyDashCooldown))
	m.facing = dir
	m.action.TryTransition(cfg.StateDashing, nil, causeDash)

	ev := EventDash
	if air {
		ev = EventAirDash
	}
	m.emit(ev, "")
}

// updateDash holds dash velocity for the dash duration. Completion hands out
// a short boost window through the Dashing exit hook.
func (m *Model) updateDash() {
	if m.dashTimer.Active() {
		m.body.SetVelocityX(m.dashSpeed * m.dashDir)
		return
	}
	m.settleAction(causeDash)
}

// move is the default branch: horizontal control, friction, wall-slide
// handling and the variable jump cut.
func (m *Model) move() {
	in := m.input
	dir := in.Direction()
	vx, vy := m.body.Velocity()
	speed := m.speed()

	if m.action.Is(cfg.StateWallSliding) {
		m.wallSlideMove(dir, vy, speed)
		return
	}

	if m.action.Is(cfg.StateBoostJumping) && m.tuning.Enabled(cfg.FlagBoostJumpSteer) && !m.Grounded() {
		speed = m.tuning.Num(cfg.KeyBoostSpeed)
	}

	switch {
	case dir != 0:
		if !m.Grounded() {
			speed *= m.tuning.Num(cfg.KeyMoveAirControl)
		}
		m.body.SetVelocityX(dir * speed)
		m.facing = dir
	case m.Grounded():
		m.body.SetVelocityX(gamemath.Damp(vx, m.tuning.Num(cfg.KeyGroundFriction)))
	case !m.airMomentum.Active():
		m.body.SetVelocityX(gamemath.Damp(vx, m.tuning.Num(cfg.KeyAirResistance)))
	}

	if in.JumpReleased && m.dampableJump && vy < 0 {
		m.body.SetVelocityY(vy * m.tuning.Num(cfg.KeyJumpReleaseDamping))
		m.dampableJump = false
	}

	if m.action.Is(cfg.StateCrouching) && in.Down && m.Grounded() {
		return
	}
	if !m.Grounded() && (m.action.Is(cfg.StateBoostJumping) || m.action.Is(cfg.StateChargeJumping)) {
		return
	}
	m.settleAction(causeSettle)
}

func (m *Model) wallSlideMove(dir, vy, speed float64) {
	into := -m.wallSide.Away()
	switch {
	case dir == 0:
		m.body.SetVelocityX(0)
	case dir == into:
		m.body.SetVelocityX(0)
		m.facing = dir
		if limit := m.tuning.Num(cfg.KeyWallSlideSpeed); vy > limit {
			m.body.SetVelocityY(limit)
		}
	default:
		m.body.SetVelocityX(dir * speed)
		m.facing = dir
	}
}

// speed is the current horizontal run speed with boost, charge and crouch
// applied.
func (m *Model) speed() float64 {
	speed := m.tuning.Num(cfg.KeyMoveSpeed)
	switch {
	case m.boost.Is(cfg.BoostActive), m.sprinting:
		speed = m.tuning.Num(cfg.KeyBoostSpeed)
	case !m.charge.Is(cfg.ChargeIdle):
		speed = m.tuning.Num(cfg.KeyChargeSpeed)
	}
	if m.action.Is(cfg.StateCrouching) {
		speed *= m.tuning.Num(cfg.KeyMoveCrouchFactor)
	}
	return speed
}

// SpeedMultiplier is the current run speed relative to the base speed.
func (m *Model) SpeedMultiplier() float64 {
	base := m.tuning.Num(cfg.KeyMoveSpeed)
	if base == 0 {
		return 1
	}
	return math.Abs(m.speed() / base)
}

func (m *Model) settleTarget() cfg.ActionState {
	if m.Grounded() {
		if m.input.Direction() != 0 {
			return cfg.StateRunning
		}
		return cfg.StateIdle
	}
	if _, vy := m.body.Velocity(); vy < 0 {
		return cfg.StateJumping
	}
	return cfg.StateFalling
}

func (m *Model) settleAction(cause string) {
	m.action.TryTransition(m.settleTarget(), nil, cause)
}
