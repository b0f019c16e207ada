package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
)

// updateBoost arms, activates and expires the boost layer. Activation is the
// only place energy is debited.
func (m *Model) updateBoost() {
	in := m.input
	m.sprinting = m.tuning.Enabled(cfg.FlagSprintHold) && in.Boost && in.Direction() != 0

	if !m.tuning.Enabled(cfg.FlagCanBoost) {
		if m.boost.Is(cfg.BoostArmed) {
			m.boost.TryTransition(cfg.BoostIdle, nil, causeDisabled)
		}
		return
	}

	if in.BoostPressed && m.boost.Is(cfg.BoostIdle) {
		m.arm(m.tuning.Num(cfg.KeyEnergyBase), m.tuning.Num(cfg.KeyBoostDuration), true, causeBoostKey)
	}

	if m.boost.Is(cfg.BoostArmed) {
		switch {
		case m.Grounded():
			m.activateBoost()
		case m.armedByKey && !in.Boost && !m.tuning.Enabled(cfg.FlagBoostBufferInAir):
			m.boost.TryTransition(cfg.BoostIdle, nil, causeReleased)
		}
	}

	if m.boost.Is(cfg.BoostActive) && !m.boostWindow.Active() {
		holding := in.Boost
		m.boost.TryTransition(cfg.BoostIdle, nil, causeExpired)
		if holding && m.tuning.Enabled(cfg.FlagCanCharge) {
			m.charge.TryTransition(cfg.ChargeCharging, m.canStartCharge, causeHold)
		}
	}
}

// activateBoost debits the armed cost; without enough energy the arm fizzles.
func (m *Model) activateBoost() {
	cost := m.armedCost
	debit := func() bool {
		return m.energy.UseEnergy(cost)
	}
	if m.boost.TryTransition(cfg.BoostActive, debit, causeActivate) {
		m.log.Debug().
			Float64("cost", cost).
			Float64("energy", m.energy.Current()).
			Msg("boost active")
		return
	}
	m.boost.TryTransition(cfg.BoostIdle, nil, causeNoEnergy)
}

// consumeBoost ends an active boost because an ability spent it.
func (m *Model) consumeBoost() {
	if !m.boost.Is(cfg.BoostActive) {
		return
	}
	m.boost.TryTransition(cfg.BoostIdle, nil, causeConsumed)
}

// carryBoost keeps a slide's boost alive into the air for window ms. It is
// free and does not count as an energy use.
func (m *Model) carryBoost(window float64) {
	if m.boost.Is(cfg.BoostActive) {
		m.boostWindow.Extend(window)
		return
	}
	m.armedCost, m.armedWindow, m.armedByKey = 0, window, false
	m.boost.TryTransition(cfg.BoostActive, nil, causeSlideJump)
}

func (m *Model) canStartCharge() bool {
	return !m.boost.Is(cfg.BoostActive)
}

// updateCharge accumulates hold time and promotes Charging to Full.
func (m *Model) updateCharge(deltaMs float64) {
	switch m.charge.Current() {
	case cfg.ChargeCharging:
		if !m.input.Boost || m.boost.Is(cfg.BoostActive) {
			m.charge.TryTransition(cfg.ChargeIdle, nil, causeReleased)
			return
		}
		m.chargeTime += deltaMs
		if m.chargeTime >= m.tuning.Num(cfg.KeyChargeDuration) {
			m.charge.TryTransition(cfg.ChargeFull, nil, causeCharged)
		}
	case cfg.ChargeFull:
		if !m.input.Boost {
			m.charge.TryTransition(cfg.ChargeIdle, nil, causeReleased)
		}
	}
}

// ChargePercent is the charge progress in [0, 1].
func (m *Model) ChargePercent() float64 {
	switch m.charge.Current() {
	case cfg.ChargeFull:
		return 1
	case cfg.ChargeCharging:
		d := m.tuning.Num(cfg.KeyChargeDuration)
		if d <= 0 {
			return 1
		}
		p := m.chargeTime / d
		if p > 1 {
			p = 1
		}
		return p
	}
	return 0
}
