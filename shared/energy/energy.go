// Package energy is the bounded boost resource. It depletes on use,
// regenerates toward its base after a cooldown and can be pushed above base
// only by chaining follow-up actions quickly.
package energy

import (
	"math"

	cfg "github.com/automoto/doomerang-abilities/config"
)

// Reader is the tuning read path. Values are read on every call so modifier
// changes apply immediately.
type Reader interface {
	Num(key string) float64
}

// ChainAction names a follow-up action that can extend energy.
type ChainAction int

const (
	ChainJump ChainAction = iota
	ChainDash
	ChainWall
)

func (a ChainAction) String() string {
	switch a {
	case ChainJump:
		return "jump"
	case ChainDash:
		return "dash"
	case ChainWall:
		return "wall"
	}
	return "unknown"
}

func (a ChainAction) windowKey() string {
	switch a {
	case ChainDash:
		return cfg.KeyEnergyChainDash
	case ChainWall:
		return cfg.KeyEnergyChainWall
	}
	return cfg.KeyEnergyChainJump
}

// Model tracks the resource on its own clock, advanced by Tick.
type Model struct {
	tuning     Reader
	current    float64
	now        float64
	lastUsedAt float64
	used       bool
	full       bool
	chained    bool
}

// New returns a model filled to its base.
func New(tuning Reader) *Model {
	m := &Model{tuning: tuning}
	m.Reset()
	return m
}

// Reset refills to base and forgets the last use.
func (m *Model) Reset() {
	m.now = 0
	m.lastUsedAt = 0
	m.used = false
	m.chained = false
	m.current = math.Min(m.Base(), m.Max())
	m.refreshFull()
}

func (m *Model) Max() float64 {
	return math.Max(0, m.tuning.Num(cfg.KeyEnergyMax))
}

func (m *Model) Base() float64 {
	return math.Max(0, m.tuning.Num(cfg.KeyEnergyBase))
}

// Current never exceeds Max, even before the next Tick after a max change.
func (m *Model) Current() float64 {
	return math.Min(m.current, m.Max())
}

// Now is the model clock in milliseconds.
func (m *Model) Now() float64 {
	return m.now
}

// Full reports whether current reached base at the last change.
func (m *Model) Full() bool {
	return m.full
}

// Chained reports whether the last chain attempt extended energy.
func (m *Model) Chained() bool {
	return m.chained
}

// Percent is current over max in [0, 100].
func (m *Model) Percent() float64 {
	max := m.Max()
	if max <= 0 {
		return 0
	}
	return m.Current() / max * 100
}

// Intensity is current over max in [0, 1].
func (m *Model) Intensity() float64 {
	return m.Percent() / 100
}

func (m *Model) HasEnergy(amount float64) bool {
	return amount >= 0 && m.Current() >= amount
}

// UseEnergy debits amount. It fails without side effects when not enough is
// available. A zero amount succeeds but does not count as a use, so it opens
// no chain window and does not delay regeneration.
func (m *Model) UseEnergy(amount float64) bool {
	if !m.HasEnergy(amount) {
		return false
	}
	if amount == 0 {
		return true
	}
	m.current = m.Current() - amount
	m.lastUsedAt = m.now
	m.used = true
	m.refreshFull()
	return true
}

// ExtendEnergy adds amount up to max. Only the chain system calls this.
func (m *Model) ExtendEnergy(amount float64) {
	if amount <= 0 {
		return
	}
	m.current = math.Min(m.current+amount, m.Max())
	m.refreshFull()
}

// Tick advances the clock and regenerates toward base once the cooldown since
// the last use has passed.
func (m *Model) Tick(deltaMs float64) {
	if deltaMs > 0 {
		m.now += deltaMs
	}

	max := m.Max()
	if m.current > max {
		m.current = max
	}

	base := math.Min(m.Base(), max)
	if m.current >= base || deltaMs <= 0 {
		m.refreshFull()
		return
	}
	if m.used && m.now-m.lastUsedAt <= m.tuning.Num(cfg.KeyEnergyCooldown) {
		return
	}
	rate := m.tuning.Num(cfg.KeyEnergyCooldownRate)
	m.current = math.Min(base, m.current+rate*deltaMs/1000)
	m.refreshFull()
}

// SinceLastUse is the time since the last debit, or +Inf before any.
func (m *Model) SinceLastUse() float64 {
	if !m.used {
		return math.Inf(1)
	}
	return m.now - m.lastUsedAt
}

// CanChain reports whether action lands inside its chain window. engaged is
// whether a boost or charge state is currently held by the caller.
func (m *Model) CanChain(action ChainAction, engaged bool) bool {
	if !engaged || !m.used {
		return false
	}
	return m.now-m.lastUsedAt <= m.tuning.Num(action.windowKey())
}

// PerformChain extends energy by the chain extension when action can chain.
func (m *Model) PerformChain(action ChainAction, engaged bool) bool {
	if !m.CanChain(action, engaged) {
		m.chained = false
		return false
	}
	m.ExtendEnergy(m.tuning.Num(cfg.KeyEnergyChainExtension))
	m.chained = true
	return true
}

func (m *Model) refreshFull() {
	m.full = m.current >= m.Base()
}
