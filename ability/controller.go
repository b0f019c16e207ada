package ability

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/solarlune/resolv"
)

// SetInput stores the snapshot the next Update reads. Edge flags already
// latched and not yet cleared by EndFrame are kept.
func (m *Model) SetInput(in Input) {
	prev := m.input
	m.input = in
	m.input.JumpPressed = in.JumpPressed || prev.JumpPressed
	m.input.JumpReleased = in.JumpReleased || prev.JumpReleased
	m.input.BoostPressed = in.BoostPressed || prev.BoostPressed
	m.input.DashPressed = in.DashPressed || prev.DashPressed
	m.input.ShootPressed = in.ShootPressed || prev.ShootPressed
	m.input.DownPressed = in.DownPressed || prev.DownPressed
	m.input.LeftPressed = in.LeftPressed || prev.LeftPressed
	m.input.RightPressed = in.RightPressed || prev.RightPressed
}

// Input returns the current snapshot.
func (m *Model) Input() Input {
	return m.input
}

// EndFrame clears the edge flags. Call it once per tick after Update.
func (m *Model) EndFrame() {
	m.input.clearEdges()
}

// Update advances the model by deltaMs. The order is fixed: sensing, timers,
// input latching, charge and boost, then action resolution and execution.
// walls are the candidate wall colliders for contact detection.
func (m *Model) Update(deltaMs float64, body Body, walls []*resolv.Object) Feedback {
	if deltaMs < 0 {
		deltaMs = 0
	}
	m.body = body
	defer func() { m.body = nil }()
	m.events = m.events[:0]

	m.sense(walls)
	m.advanceTimers(deltaMs)
	m.latchInput()
	m.updateCharge(deltaMs)
	m.updateBoost()
	m.resolve()

	return m.feedback()
}

func (m *Model) advanceTimers(deltaMs float64) {
	m.now += deltaMs
	m.energy.Tick(deltaMs)
	for _, f := range m.timers() {
		f.Tick(deltaMs)
	}
}

// latchInput turns this tick's edges into buffered intents.
func (m *Model) latchInput() {
	in := m.input
	if in.JumpPressed {
		m.jumpBuffer.Start(m.tuning.Num(cfg.KeyJumpBuffer))
	}

	m.doubleTapDir = 0
	if in.LeftPressed && m.tap(0) {
		m.doubleTapDir = cfg.DirectionLeft
	}
	if in.RightPressed && m.tap(1) {
		m.doubleTapDir = cfg.DirectionRight
	}
}

// tap records a direction press and reports whether it completes a double tap.
func (m *Model) tap(i int) bool {
	window := m.tuning.Num(cfg.KeyDashDoubleTapWindow)
	double := m.tapped[i] && m.now-m.lastTap[i] <= window
	m.lastTap[i] = m.now
	// A completed double tap does not start the next one.
	m.tapped[i] = !double
	return double
}
