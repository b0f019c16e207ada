package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
)

// resolve picks at most one action branch for the tick. Exclusive actions in
// progress only run their own timers and exit checks.
func (m *Model) resolve() {
	if m.input.ShootPressed && !m.exclusive() {
		m.emit(EventShoot, "")
	}

	switch {
	case m.action.Is(cfg.StateDashing):
		m.updateDash()
	case m.action.Is(cfg.StateSliding):
		m.updateSlide()
	case m.wallKickMomentum.Active():
		// locked until the push has carried the actor off the wall
	case m.tryWallAction():
	case m.tryGroundJump():
	case m.tryDoubleJump():
	case m.trySlide():
	case m.tryCrouch():
	case m.tryDash():
	default:
		m.move()
	}
}

// exclusive reports whether an action in progress suppresses new input.
func (m *Model) exclusive() bool {
	return m.action.Is(cfg.StateDashing) || m.action.Is(cfg.StateSliding) || m.wallKickMomentum.Active()
}

func (m *Model) tryWallAction() bool {
	if !m.action.Is(cfg.StateWallSliding) || !m.jumpBuffer.Active() {
		return false
	}
	if m.input.Up && m.canWallRun() {
		m.wallRun()
		return true
	}
	if m.canWallKick && m.tuning.Enabled(cfg.FlagCanWallKick) {
		m.wallKick()
		return true
	}
	return false
}

func (m *Model) canWallRun() bool {
	return m.tuning.Enabled(cfg.FlagCanWallRun) &&
		m.boostedWallContact &&
		float64(m.wallRunCount) < m.tuning.Num(cfg.KeyWallRunMax)
}

func (m *Model) tryGroundJump() bool {
	if !m.jumpBuffer.Active() || !(m.Grounded() || m.coyote.Active()) {
		return false
	}
	switch {
	case m.charge.Is(cfg.ChargeFull) && m.tuning.Enabled(cfg.FlagCanChargeJump):
		m.chargeJump()
	case (m.boost.Is(cfg.BoostActive) || m.action.Is(cfg.StateSliding)) && m.tuning.Enabled(cfg.FlagCanBoostJump):
		m.boostJump()
	default:
		m.jump()
	}
	return true
}

func (m *Model) tryDoubleJump() bool {
	if m.Grounded() || !m.jumpBuffer.Active() || m.doubleJumpUsed {
		return false
	}
	if !m.tuning.Enabled(cfg.FlagCanDoubleJump) {
		return false
	}
	m.doubleJump()
	return true
}

func (m *Model) trySlide() bool {
	in := m.input
	if !m.Grounded() || !in.DownPressed || in.Direction() == 0 {
		return false
	}
	if !m.tuning.Enabled(cfg.FlagCanSlide) || !(m.boost.Is(cfg.BoostActive) || m.sprinting) {
		return false
	}
	m.startSlide(in.Direction())
	return true
}

func (m *Model) tryCrouch() bool {
	if !m.Grounded() || !m.input.Down || m.action.Is(cfg.StateCrouching) {
		return false
	}
	if !m.tuning.Enabled(cfg.FlagCanCrouch) {
		return false
	}
	m.action.TryTransition(cfg.StateCrouching, nil, causeCrouch)
	return true
}

func (m *Model) tryDash() bool {
	if !m.input.DashPressed && m.doubleTapDir == 0 {
		return false
	}
	if !m.tuning.Enabled(cfg.FlagCanDash) || m.dashTimer.Active() || m.dashCooldown.Active() {
		return false
	}
	dir := m.doubleTapDir
	if dir == 0 {
		dir = m.input.Direction()
	}
	if dir == 0 {
		dir = m.facing
	}
	m.startDash(dir, !m.Grounded() && m.tuning.Enabled(cfg.FlagCanAirDash))
	return true
}
