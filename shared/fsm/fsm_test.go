package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimedFlag(t *testing.T) {
	t.Run("zero value is inactive", func(t *testing.T) {
		var f TimedFlag
		assert.False(t, f.Active())
		f.Tick(16)
		assert.Equal(t, 0.0, f.Remaining())
	})

	t.Run("counts down and floors at zero", func(t *testing.T) {
		var f TimedFlag
		f.Start(100)
		f.Tick(40)
		assert.True(t, f.Active())
		assert.InDelta(t, 60, f.Remaining(), 1e-9)
		f.Tick(70)
		assert.False(t, f.Active())
		assert.Equal(t, 0.0, f.Remaining())
	})

	t.Run("negative start is clamped", func(t *testing.T) {
		var f TimedFlag
		f.Start(-5)
		assert.False(t, f.Active())
	})

	t.Run("negative delta is ignored", func(t *testing.T) {
		var f TimedFlag
		f.Start(10)
		f.Tick(-50)
		assert.InDelta(t, 10, f.Remaining(), 1e-9)
	})

	t.Run("stop consumes", func(t *testing.T) {
		var f TimedFlag
		f.Start(75)
		f.Stop()
		assert.False(t, f.Active())
	})

	t.Run("extend adds time", func(t *testing.T) {
		var f TimedFlag
		f.Start(50)
		f.Extend(300)
		assert.InDelta(t, 350, f.Remaining(), 1e-9)
		f.Extend(-10)
		assert.InDelta(t, 350, f.Remaining(), 1e-9)
	})

	t.Run("instances are independent", func(t *testing.T) {
		var a, b TimedFlag
		a.Start(10)
		b.Start(20)
		a.Tick(10)
		assert.False(t, a.Active())
		assert.True(t, b.Active())
	})
}

type light int

const (
	red light = iota
	green
	amber
)

func TestMachineTransitions(t *testing.T) {
	m := New[light, string](red)
	var calls []string

	m.OnExit(red, func(from, to light, ctx string) {
		assert.Equal(t, red, m.Current(), "exit runs before commit")
		calls = append(calls, "exit-red:"+ctx)
	})
	m.OnEnter(green, func(from, to light, ctx string) {
		assert.Equal(t, green, m.Current(), "enter sees committed state")
		assert.Equal(t, red, from)
		assert.Equal(t, green, to)
		calls = append(calls, "enter-green:"+ctx)
	})

	assert.True(t, m.TryTransition(green, nil, "go"))
	assert.Equal(t, []string{"exit-red:go", "enter-green:go"}, calls)
	assert.True(t, m.Is(green))
}

func TestMachineNoOps(t *testing.T) {
	m := New[light, string](red)
	fired := 0
	m.OnEnter(red, func(light, light, string) { fired++ })
	m.OnExit(red, func(light, light, string) { fired++ })

	assert.False(t, m.TryTransition(red, nil, ""), "same state is a no-op")
	assert.False(t, m.TryTransition(green, func() bool { return false }, ""), "guard rejects")
	assert.Equal(t, red, m.Current())
	assert.Equal(t, 0, fired)

	assert.True(t, m.TryTransition(green, func() bool { return true }, ""))
	assert.Equal(t, 1, fired)
}

func TestMachineLastRegistrationWins(t *testing.T) {
	m := New[light, int](red)
	var got []int
	m.OnEnter(amber, func(_, _ light, ctx int) { got = append(got, 1) })
	m.OnEnter(amber, func(_, _ light, ctx int) { got = append(got, 2) })
	m.TryTransition(amber, nil, 0)
	assert.Equal(t, []int{2}, got)
}

func TestMachineNestedTransitionOnOtherMachine(t *testing.T) {
	outer := New[light, string](red)
	inner := New[light, string](red)
	outer.OnEnter(green, func(_, _ light, _ string) {
		inner.TryTransition(amber, nil, "nested")
	})

	var seen []light
	outer.OnTransition(func(_, to light, _ string) { seen = append(seen, to) })

	outer.TryTransition(green, nil, "")
	assert.Equal(t, amber, inner.Current())
	assert.Equal(t, []light{green}, seen)
}

func TestMachineReset(t *testing.T) {
	m := New[light, string](green)
	fired := false
	m.OnEnter(red, func(light, light, string) { fired = true })
	m.Reset(red)
	assert.Equal(t, red, m.Current())
	assert.False(t, fired)
}
