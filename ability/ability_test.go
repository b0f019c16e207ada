package ability

import (
	"bytes"
	"math/rand"
	"testing"

	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBody struct {
	contacts Contacts
	vx, vy   float64
	box      *resolv.Object
}

func (b *fakeBody) Contacts() Contacts           { return b.contacts }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocityX(x float64)       { b.vx = x }
func (b *fakeBody) SetVelocityY(y float64)       { b.vy = y }
func (b *fakeBody) Bounds() *resolv.Object       { return b.box }

// The actor box's right edge is flush with rightWall's left edge.
func newBody(down bool) *fakeBody {
	return &fakeBody{
		contacts: Contacts{Down: down},
		box:      resolv.NewObject(100, 100, 28, 32),
	}
}

func rightWall() *resolv.Object {
	return resolv.NewObject(128, 0, 16, 300)
}

func disable(flag string) cfg.Modifier {
	return cfg.Modifier{Key: flag, Op: cfg.OpSet, Value: 0, Enabled: true}
}

func newModel(mods ...cfg.Modifier) (*Model, *cfg.Tuning) {
	tuning := cfg.NewTuning(cfg.DefaultTable())
	for _, mod := range mods {
		tuning.Modifiers().Add(mod)
	}
	return New(tuning), tuning
}

func step(m *Model, b *fakeBody, dt float64, in Input, walls ...*resolv.Object) Feedback {
	m.SetInput(in)
	fb := m.Update(dt, b, walls)
	m.EndFrame()
	return fb
}

var (
	jumpPress  = Input{JumpPressed: true, Jump: true}
	boostPress = Input{BoostPressed: true, Boost: true}
)

// airborne takes the actor off the ground long enough for coyote time to run
// out.
func airborne(m *Model, b *fakeBody, vy float64, walls ...*resolv.Object) {
	b.contacts.Down = false
	b.vy = vy
	step(m, b, 200, Input{}, walls...)
}

func TestGroundJump(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, Input{})

	fb := step(m, b, 16, jumpPress)
	assert.Equal(t, -450.0, b.vy)
	assert.Equal(t, cfg.StateJumping, fb.Action)
	assert.Equal(t, cfg.Airborne, fb.Movement)
	assert.True(t, fb.Has(EventJump))

	t.Run("a ground jump grants no coyote time", func(t *testing.T) {
		b.contacts.Down = false
		fb := step(m, b, 16, jumpPress)
		assert.True(t, fb.Has(EventDoubleJump))
		assert.False(t, fb.Has(EventJump))
	})
}

func TestCoyoteTime(t *testing.T) {
	t.Run("jump 99ms after leaving a ledge", func(t *testing.T) {
		m, _ := newModel()
		b := newBody(true)
		step(m, b, 16, Input{})

		b.contacts.Down = false
		fb := step(m, b, 99, jumpPress)
		assert.True(t, fb.Has(EventJump))
		assert.Equal(t, -450.0, b.vy)
		assert.False(t, m.DoubleJumpUsed())
	})

	t.Run("101ms is a double jump instead", func(t *testing.T) {
		m, _ := newModel()
		b := newBody(true)
		step(m, b, 16, Input{})

		b.contacts.Down = false
		fb := step(m, b, 101, jumpPress)
		assert.False(t, fb.Has(EventJump))
		assert.True(t, fb.Has(EventDoubleJump))
		assert.InDelta(t, -495, b.vy, 1e-9)
		assert.True(t, m.DoubleJumpUsed())
	})
}

func TestJumpBuffer(t *testing.T) {
	t.Run("press 10ms before landing", func(t *testing.T) {
		m, _ := newModel(disable(cfg.FlagCanDoubleJump))
		b := newBody(false)
		airborne(m, b, 100)

		step(m, b, 16, jumpPress)
		assert.Equal(t, 100.0, b.vy, "no jump in the air")

		b.contacts.Down = true
		b.vy = 0
		fb := step(m, b, 10, Input{Jump: true})
		assert.True(t, fb.Has(EventJump))
		assert.Equal(t, -450.0, b.vy)
	})

	t.Run("press 80ms before landing", func(t *testing.T) {
		m, _ := newModel(disable(cfg.FlagCanDoubleJump))
		b := newBody(false)
		airborne(m, b, 100)
		step(m, b, 16, jumpPress)

		b.contacts.Down = true
		b.vy = 0
		fb := step(m, b, 80, Input{Jump: true})
		assert.False(t, fb.Has(EventJump))
		assert.Equal(t, cfg.StateIdle, fb.Action)
	})
}

func TestVariableJumpHeight(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, jumpPress)

	b.contacts.Down = false
	step(m, b, 16, Input{JumpReleased: true})
	assert.Equal(t, -225.0, b.vy)

	step(m, b, 16, Input{JumpReleased: true})
	assert.Equal(t, -225.0, b.vy, "the cut applies once per jump")
}

func TestBoostJumpSpendsEnergyOnce(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)

	fb := step(m, b, 16, boostPress)
	require.Equal(t, cfg.BoostActive, fb.Boost)
	assert.Equal(t, 0.0, m.Energy().Current())
	assert.True(t, fb.Has(EventBoost))

	fb = step(m, b, 250, Input{JumpPressed: true, Jump: true, Right: true})
	assert.Equal(t, cfg.StateBoostJumping, fb.Action)
	assert.Equal(t, cfg.BoostIdle, fb.Boost, "the jump consumes the window")
	assert.Equal(t, -550.0, b.vy)
	assert.Equal(t, 400.0, b.vx)
	assert.Equal(t, 0.0, m.Energy().Current())
	assert.False(t, fb.Has(EventBoost))
	assert.Equal(t, 300.0, m.Timers()["airMomentum"])
}

func TestBoostJumpInsideChainWindowExtends(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)

	fb := step(m, b, 100, Input{JumpPressed: true, Jump: true, Right: true})
	assert.True(t, fb.Has(EventChain))
	assert.Equal(t, 200.0, m.Energy().Current())
}

func TestBoostWithoutEnergyFizzles(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)
	fb := step(m, b, 400, Input{})
	require.Equal(t, cfg.BoostIdle, fb.Boost, "window expired")
	require.Equal(t, 0.0, m.Energy().Current(), "still inside the regeneration cooldown")

	fb = step(m, b, 16, boostPress)
	assert.Equal(t, cfg.BoostIdle, fb.Boost)
	assert.False(t, fb.Has(EventBoost))
	last, ok := m.History().Last()
	require.True(t, ok)
	assert.Equal(t, causeNoEnergy, last.Cause)
	assert.Equal(t, 0.0, m.Energy().Current())
}

func TestBoostArmedInAir(t *testing.T) {
	t.Run("buffered until landing", func(t *testing.T) {
		m, _ := newModel()
		b := newBody(false)
		airborne(m, b, 100)

		fb := step(m, b, 16, boostPress)
		assert.Equal(t, cfg.BoostArmed, fb.Boost)
		assert.Equal(t, 300.0, m.Energy().Current(), "arming costs nothing")

		fb = step(m, b, 16, Input{})
		assert.Equal(t, cfg.BoostArmed, fb.Boost)

		b.contacts.Down = true
		b.vy = 0
		fb = step(m, b, 16, Input{})
		assert.Equal(t, cfg.BoostActive, fb.Boost)
		assert.Equal(t, 0.0, m.Energy().Current())
	})

	t.Run("released before landing without buffering", func(t *testing.T) {
		m, _ := newModel(disable(cfg.FlagBoostBufferInAir))
		b := newBody(false)
		airborne(m, b, 100)

		step(m, b, 16, boostPress)
		fb := step(m, b, 16, Input{})
		assert.Equal(t, cfg.BoostIdle, fb.Boost)
	})
}

func TestHoldToCharge(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	held := Input{Boost: true}

	step(m, b, 16, boostPress)
	fb := step(m, b, 350, held)
	require.Equal(t, cfg.BoostIdle, fb.Boost)
	require.Equal(t, cfg.ChargeCharging, fb.Charge)
	assert.InDelta(t, 128.0/140.0, fb.SpeedMultiplier, 1e-9)

	fb = step(m, b, 599, held)
	assert.Equal(t, cfg.ChargeCharging, fb.Charge)
	assert.InDelta(t, 599.0/600.0, fb.ChargePercent, 1e-9)

	fb = step(m, b, 1, held)
	assert.Equal(t, cfg.ChargeFull, fb.Charge)
	assert.Equal(t, 1.0, fb.ChargePercent)
	assert.Equal(t, cfg.TagChargeFull, fb.Tag)

	fb = step(m, b, 16, Input{Boost: true, JumpPressed: true, Jump: true})
	assert.True(t, fb.Has(EventChargeJump))
	assert.Equal(t, cfg.StateChargeJumping, fb.Action)
	assert.Equal(t, cfg.ChargeIdle, fb.Charge)
	assert.Equal(t, -800.0, b.vy)
}

func TestChargeResetsOnRelease(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)
	step(m, b, 350, Input{Boost: true})
	step(m, b, 300, Input{Boost: true})

	fb := step(m, b, 16, Input{})
	assert.Equal(t, cfg.ChargeIdle, fb.Charge)
	assert.Equal(t, 0.0, fb.ChargePercent)

	t.Run("disabled charging never starts", func(t *testing.T) {
		m, _ := newModel(disable(cfg.FlagCanCharge))
		b := newBody(true)
		step(m, b, 16, boostPress)
		fb := step(m, b, 350, Input{Boost: true})
		assert.Equal(t, cfg.ChargeIdle, fb.Charge)
	})
}

func TestDashChainsInsideWindow(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)
	require.Equal(t, 0.0, m.Energy().Current())

	fb := step(m, b, 150, Input{DashPressed: true, Right: true})
	assert.True(t, fb.Has(EventDash))
	assert.True(t, fb.Has(EventChain))
	assert.Equal(t, 200.0, m.Energy().Current())
	assert.Equal(t, cfg.StateDashing, fb.Action)
	assert.Equal(t, cfg.TagBoostDash, fb.Tag)
	assert.Equal(t, 500.0, b.vx)

	// Dash and boost window run out together; completion arms a new window.
	fb = step(m, b, 200, Input{})
	assert.Equal(t, cfg.StateIdle, fb.Action)
	assert.Equal(t, cfg.BoostArmed, fb.Boost)

	fb = step(m, b, 16, Input{})
	assert.Equal(t, cfg.BoostActive, fb.Boost)
	assert.Equal(t, 300.0, m.Timers()["boost"])
	assert.Equal(t, 200.0, m.Energy().Current())

	// The dash-armed activation is free and does not restart the chain window.
	fb = step(m, b, 16, Input{JumpPressed: true, Jump: true, Right: true})
	assert.True(t, fb.Has(EventBoostJump))
	assert.False(t, fb.Has(EventChain))
	assert.Equal(t, 200.0, m.Energy().Current())
}

func TestDashLoopCannotFarmEnergy(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	base := m.Energy().Base()

	for i := 0; i < 10; i++ {
		frames := []struct {
			dt float64
			in Input
		}{
			{16, Input{DashPressed: true, Right: true}},
			{250, Input{Right: true}},
			{16, Input{Right: true}},
			{16, Input{JumpPressed: true, Jump: true, Right: true}},
		}
		for _, f := range frames {
			fb := step(m, b, f.dt, f.in)
			require.False(t, fb.Has(EventChain), "cycle %d", i)
			require.LessOrEqual(t, m.Energy().Current(), base, "cycle %d", i)
		}

		b.contacts.Down = false
		step(m, b, 300, Input{})
		b.contacts.Down = true
		b.vy = 0
		step(m, b, 1000, Input{})
		require.LessOrEqual(t, m.Energy().Current(), base, "cycle %d", i)
	}
}

func TestDashOutsideChainWindow(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)

	fb := step(m, b, 151, Input{DashPressed: true, Right: true})
	assert.True(t, fb.Has(EventDash))
	assert.False(t, fb.Has(EventChain))
	assert.Equal(t, 0.0, m.Energy().Current())
}

func TestDash(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)

	fb := step(m, b, 16, Input{DashPressed: true})
	require.True(t, fb.Has(EventDash))
	assert.Equal(t, cfg.TagDash, fb.Tag)
	assert.Equal(t, 500.0, b.vx, "dashes toward facing without input")
	assert.Equal(t, 0.0, b.vy)

	b.vx = 0
	step(m, b, 100, Input{Left: true})
	assert.Equal(t, 500.0, b.vx, "dash velocity holds against input")

	fb = step(m, b, 100, Input{})
	assert.Equal(t, cfg.StateIdle, fb.Action)
	assert.Equal(t, cfg.BoostArmed, fb.Boost)

	fb = step(m, b, 16, Input{})
	assert.Equal(t, cfg.BoostActive, fb.Boost)
	assert.Equal(t, 300.0, m.Energy().Current(), "a dash window costs nothing")

	fb = step(m, b, 16, Input{DashPressed: true})
	assert.False(t, fb.Has(EventDash), "cooldown")
	assert.NotEqual(t, cfg.StateDashing, fb.Action)
}

func TestDoubleTapDash(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)

	fb := step(m, b, 16, Input{RightPressed: true, Right: true})
	assert.False(t, fb.Has(EventDash))
	step(m, b, 100, Input{})

	fb = step(m, b, 16, Input{RightPressed: true, Right: true})
	assert.True(t, fb.Has(EventDash))
	assert.Equal(t, 500.0, b.vx)

	t.Run("taps too far apart", func(t *testing.T) {
		m, _ := newModel()
		b := newBody(true)
		step(m, b, 16, Input{LeftPressed: true, Left: true})
		step(m, b, 400, Input{})
		fb := step(m, b, 16, Input{LeftPressed: true, Left: true})
		assert.False(t, fb.Has(EventDash))
	})
}

func TestAirDash(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	airborne(m, b, 200)

	fb := step(m, b, 16, Input{DashPressed: true, Left: true})
	assert.True(t, fb.Has(EventAirDash))
	assert.Equal(t, cfg.TagAirDash, fb.Tag)
	assert.Equal(t, -400.0, b.vx)
	assert.Equal(t, 100.0, b.vy)
	assert.Equal(t, cfg.DirectionLeft, fb.Facing)
}

func TestSlide(t *testing.T) {
	m, tuning := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)

	fb := step(m, b, 16, Input{DownPressed: true, Down: true, Right: true})
	require.Equal(t, cfg.StateSliding, fb.Action)
	assert.True(t, fb.Has(EventSlide))
	assert.Equal(t, cfg.BoostIdle, fb.Boost, "slide consumes the boost")
	assert.Equal(t, cfg.TagBoostSlide, fb.Tag)
	assert.Equal(t, 0.5, fb.HeightScale)
	assert.Equal(t, tuning.Num(cfg.KeySlideSpeed), b.vx)

	b.vx = 0
	fb = step(m, b, 100, Input{Down: true, Right: true})
	assert.Equal(t, cfg.StateSliding, fb.Action)
	assert.Equal(t, tuning.Num(cfg.KeySlideSpeed), b.vx)

	fb = step(m, b, 16, Input{Left: true})
	assert.Equal(t, cfg.StateRunning, fb.Action, "opposite input ends the slide")
	assert.Equal(t, 1.0, fb.HeightScale)
}

func TestSlideEnds(t *testing.T) {
	t.Run("timer", func(t *testing.T) {
		m, _ := newModel()
		b := newBody(true)
		step(m, b, 16, boostPress)
		step(m, b, 16, Input{DownPressed: true, Down: true, Right: true})
		fb := step(m, b, 800, Input{Right: true})
		assert.Equal(t, cfg.StateRunning, fb.Action)
	})

	t.Run("leaving the ground", func(t *testing.T) {
		m, _ := newModel()
		b := newBody(true)
		step(m, b, 16, boostPress)
		step(m, b, 16, Input{DownPressed: true, Down: true, Right: true})
		b.contacts.Down = false
		b.vy = 10
		fb := step(m, b, 16, Input{Right: true})
		assert.Equal(t, cfg.StateFalling, fb.Action)
		assert.Equal(t, 1.0, fb.HeightScale)
	})
}

func TestSlideJumpCarriesSpeed(t *testing.T) {
	m, tuning := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)
	step(m, b, 16, Input{DownPressed: true, Down: true, Right: true})

	fb := step(m, b, 16, Input{JumpPressed: true, Jump: true, Down: true, Right: true})
	assert.True(t, fb.Has(EventBoostJump))
	assert.Equal(t, cfg.StateBoostJumping, fb.Action)
	assert.Equal(t, -550.0, b.vy)
	assert.Equal(t, tuning.Num(cfg.KeySlideSpeed), b.vx)
	assert.Equal(t, 300.0, m.Timers()["airMomentum"])
	assert.Equal(t, 1.0, fb.HeightScale)

	assert.Equal(t, cfg.BoostActive, fb.Boost, "a boosted slide carries the boost into the air")
	assert.Equal(t, 300.0, m.Timers()["boost"])
	assert.InDelta(t, 400.0/140.0, fb.SpeedMultiplier, 1e-9)
	var carried bool
	for _, e := range m.History().Entries() {
		if e.Machine == "boost" && e.To == cfg.BoostActive.String() && e.Cause == causeSlideJump {
			carried = true
		}
	}
	assert.True(t, carried)

	b.contacts.Down = false
	fb = step(m, b, 301, Input{Right: true})
	assert.Equal(t, cfg.BoostIdle, fb.Boost)
}

func TestCrouch(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)

	fb := step(m, b, 16, Input{DownPressed: true, Down: true, Right: true})
	require.Equal(t, cfg.StateCrouching, fb.Action, "no boost means crouch, not slide")
	assert.Equal(t, 0.5, fb.HeightScale)
	assert.Equal(t, cfg.TagCrouch, fb.Tag)

	step(m, b, 16, Input{Down: true, Right: true})
	assert.Equal(t, 70.0, b.vx, "crouch walks at half speed")
	assert.Equal(t, cfg.StateCrouching, m.Action())

	fb = step(m, b, 16, Input{Right: true})
	assert.Equal(t, cfg.StateRunning, fb.Action)
	assert.Equal(t, 1.0, fb.HeightScale)
}

func TestWallKick(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	b.contacts.Right = true
	b.vy = 100
	wall := rightWall()

	fb := step(m, b, 200, Input{}, wall)
	require.Equal(t, cfg.StateWallSliding, fb.Action)
	require.Equal(t, cfg.WallRight, fb.WallSide)
	assert.Equal(t, cfg.TagWallSlide, fb.Tag)

	fb = step(m, b, 16, jumpPress, wall)
	assert.True(t, fb.Has(EventWallKick))
	assert.Equal(t, cfg.StateJumping, fb.Action)
	assert.Equal(t, cfg.WallNone, fb.WallSide)
	assert.InDelta(t, -135, b.vy, 1e-9, "slide kick gets reduced lift")
	assert.Equal(t, -800.0, b.vx)
	assert.Equal(t, cfg.TagWallSlideKick, fb.Tag)
	assert.False(t, m.CanWallKick())

	b.contacts.Right = false
	step(m, b, 16, Input{Right: true}, wall)
	assert.Equal(t, -800.0, b.vx, "input is locked out after the kick")

	// Second contact before landing cannot kick again.
	step(m, b, 200, Input{}, wall)
	b.contacts.Right = true
	b.vy = 100
	fb = step(m, b, 16, Input{}, wall)
	require.Equal(t, cfg.StateWallSliding, fb.Action)
	fb = step(m, b, 16, jumpPress, wall)
	assert.False(t, fb.Has(EventWallKick))
	assert.True(t, fb.Has(EventDoubleJump))

	b.contacts = Contacts{Down: true}
	b.vy = 0
	fb = step(m, b, 16, Input{}, wall)
	assert.True(t, fb.Has(EventLand))
	assert.True(t, m.CanWallKick())
	assert.False(t, m.DoubleJumpUsed())
}

func TestWallKickFromLeftWall(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	b.contacts.Left = true
	b.vy = 100
	wall := resolv.NewObject(84, 0, 16, 300)

	fb := step(m, b, 200, Input{}, wall)
	require.Equal(t, cfg.StateWallSliding, fb.Action)
	require.Equal(t, cfg.WallLeft, fb.WallSide)

	fb = step(m, b, 16, jumpPress, wall)
	assert.True(t, fb.Has(EventWallKick))
	assert.Greater(t, b.vx, 0.0, "kicks away from a left wall")
	assert.Equal(t, 800.0, b.vx)
	assert.Equal(t, cfg.DirectionRight, fb.Facing)
}

func TestWallSwapReentersSlide(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	left := resolv.NewObject(84, 0, 16, 300)
	right := rightWall()
	step(m, b, 16, boostPress)

	b.contacts = Contacts{Right: true}
	b.vy = 100
	fb := step(m, b, 16, Input{}, right)
	require.Equal(t, cfg.StateWallSliding, fb.Action)
	require.Equal(t, cfg.TagBoostWallSlide, fb.Tag)

	// The boost runs out while the first contact keeps its boosted flag.
	fb = step(m, b, 400, Input{}, right)
	require.Equal(t, cfg.BoostIdle, fb.Boost)
	require.Equal(t, cfg.TagBoostWallSlide, fb.Tag)

	b.contacts = Contacts{Left: true}
	fb = step(m, b, 16, Input{}, left, right)
	assert.Equal(t, cfg.StateWallSliding, fb.Action)
	assert.Equal(t, cfg.WallLeft, fb.WallSide)
	assert.Equal(t, cfg.TagWallSlide, fb.Tag, "the new contact is not boosted")

	var exited, entered bool
	for _, e := range m.History().Entries() {
		if e.Machine != "action" || e.Cause != causeWallSwap {
			continue
		}
		if e.From == cfg.StateWallSliding.String() {
			exited = true
		}
		if e.To == cfg.StateWallSliding.String() {
			entered = true
		}
	}
	assert.True(t, exited)
	assert.True(t, entered)
}

func TestWallPeakKick(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	b.contacts.Right = true
	b.vy = 100
	wall := rightWall()
	step(m, b, 200, Input{}, wall)

	b.vy = -100
	fb := step(m, b, 16, jumpPress, wall)
	assert.Equal(t, cfg.TagWallPeakKick, fb.Tag)
	assert.InDelta(t, -360, b.vy, 1e-9)
	assert.Equal(t, -450.0, b.vx)
}

func TestWallSlideMovement(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	b.contacts.Right = true
	b.vy = 100
	wall := rightWall()
	step(m, b, 200, Input{}, wall)

	b.vy = 100
	step(m, b, 16, Input{Right: true}, wall)
	assert.Equal(t, 25.0, b.vy, "pressing into the wall slows the slide")
	assert.Equal(t, 0.0, b.vx)
	assert.Equal(t, cfg.StateWallSliding, m.Action(), "stays on the wall below the entry threshold")

	step(m, b, 16, Input{Left: true}, wall)
	assert.Equal(t, -140.0, b.vx)

	b.contacts.Right = false
	fb := step(m, b, 16, Input{Left: true}, wall)
	assert.Equal(t, cfg.StateFalling, fb.Action)
	assert.Equal(t, cfg.WallNone, fb.WallSide)
}

func TestWallSlideNeedsFallSpeed(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	b.contacts.Right = true

	fb := step(m, b, 200, Input{}, rightWall())
	assert.Equal(t, cfg.StateFalling, fb.Action)

	b.vy = 40
	fb = step(m, b, 16, Input{}, rightWall())
	assert.NotEqual(t, cfg.StateWallSliding, fb.Action)

	t.Run("no overlapping wall", func(t *testing.T) {
		m, _ := newModel()
		b := newBody(false)
		b.contacts.Right = true
		b.vy = 100
		fb := step(m, b, 200, Input{}, resolv.NewObject(400, 0, 16, 300))
		assert.Equal(t, cfg.StateFalling, fb.Action)
	})
}

func TestWallRun(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	wall := rightWall()
	step(m, b, 16, boostPress)

	b.contacts = Contacts{Right: true}
	b.vy = 100
	fb := step(m, b, 16, Input{}, wall)
	require.Equal(t, cfg.StateWallSliding, fb.Action)
	assert.Equal(t, cfg.TagBoostWallSlide, fb.Tag)

	run := Input{JumpPressed: true, Jump: true, Up: true}
	fb = step(m, b, 16, run, wall)
	require.True(t, fb.Has(EventWallRun))
	assert.InDelta(t, -630, b.vy, 1e-9)
	assert.InDelta(t, 320, b.vx, 1e-9)
	assert.Equal(t, 1, m.WallRunCount())
	assert.InDelta(t, 618, m.Timers()["boost"], 1e-9, "wall run extends the boost window")

	// Rising fast into the wall re-enters contact with momentum conversion.
	fb = step(m, b, 16, run, wall)
	require.True(t, fb.Has(EventWallRun))
	assert.Equal(t, 2, m.WallRunCount())

	fb = step(m, b, 16, run, wall)
	assert.False(t, fb.Has(EventWallRun), "run limit reached")
	assert.True(t, fb.Has(EventWallKick))
	assert.Equal(t, cfg.TagWallPeakKick, fb.Tag)
	assert.Equal(t, -450.0, b.vx)
}

func TestWallRunNeedsBoostedContact(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	b.contacts.Right = true
	b.vy = 100
	wall := rightWall()
	step(m, b, 200, Input{}, wall)

	fb := step(m, b, 16, Input{JumpPressed: true, Jump: true, Up: true}, wall)
	assert.False(t, fb.Has(EventWallRun))
	assert.True(t, fb.Has(EventWallKick))
}

func TestMomentumConversion(t *testing.T) {
	m, _ := newModel()
	b := newBody(false)
	airborne(m, b, 100)

	b.contacts.Right = true
	b.vx = 300
	b.vy = -100
	fb := step(m, b, 16, Input{}, rightWall())
	assert.Equal(t, cfg.StateWallSliding, fb.Action)
	assert.InDelta(t, -190, b.vy, 1e-9)
	assert.Equal(t, cfg.TagMomentum, fb.Tag)
	assert.Equal(t, 0.0, b.vx, "wall slide holds still without input")
}

func TestShootEvent(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	fb := step(m, b, 16, Input{ShootPressed: true})
	assert.True(t, fb.Has(EventShoot))

	step(m, b, 16, Input{DashPressed: true})
	fb = step(m, b, 16, Input{ShootPressed: true})
	assert.False(t, fb.Has(EventShoot), "no shooting mid-dash")
}

func TestSprintProfile(t *testing.T) {
	table := cfg.DefaultTable()
	table.Version = "v1"
	tuning := cfg.NewTuning(table)
	m := New(tuning)
	b := newBody(true)

	fb := step(m, b, 16, Input{BoostPressed: true, Boost: true, Right: true})
	assert.Equal(t, cfg.BoostIdle, fb.Boost, "v1 has no boost state")
	assert.Equal(t, 320.0, b.vx)
	assert.Equal(t, cfg.TagSprint, fb.Tag)

	fb = step(m, b, 16, Input{Boost: true, Right: true, DownPressed: true, Down: true})
	assert.Equal(t, cfg.StateSliding, fb.Action)
	assert.Equal(t, cfg.TagSlide, fb.Tag)
	assert.Equal(t, tuning.Num(cfg.KeySlideSpeed), b.vx)
}

func TestModifiersApplyImmediately(t *testing.T) {
	m, tuning := newModel()
	b := newBody(true)
	tuning.Modifiers().Add(cfg.Modifier{Key: cfg.KeyJumpVelocity, Op: cfg.OpMul, Value: 2, Enabled: true})

	step(m, b, 16, jumpPress)
	assert.Equal(t, -900.0, b.vy)
}

func TestSetInputKeepsPendingEdges(t *testing.T) {
	m, _ := newModel()
	m.SetInput(Input{JumpPressed: true, Jump: true})
	m.SetInput(Input{Jump: true, Right: true})
	in := m.Input()
	assert.True(t, in.JumpPressed)
	assert.True(t, in.Right)

	m.EndFrame()
	assert.False(t, m.Input().JumpPressed)
	assert.True(t, m.Input().Jump)
}

func TestFeedback(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	fb := step(m, b, 16, Input{Right: true})
	assert.Equal(t, cfg.TagRunning, fb.Tag)
	assert.Equal(t, cfg.ColorFor(cfg.TagRunning), fb.Color)
	assert.InDelta(t, 30, fb.EnergyPercent, 1e-9)
	assert.InDelta(t, 0.3, fb.Intensity, 1e-9)
	assert.Equal(t, 1.0, fb.SpeedMultiplier)
	assert.Equal(t, 1.0, fb.HeightScale)

	fb = step(m, b, 16, boostPress)
	assert.Equal(t, cfg.TagBoostActive, fb.Tag)
	assert.InDelta(t, 400.0/140.0, fb.SpeedMultiplier, 1e-9)
	assert.Equal(t, 0.0, fb.EnergyPercent)
}

func TestHistoryAndLogging(t *testing.T) {
	var buf bytes.Buffer
	tuning := cfg.NewTuning(cfg.DefaultTable())
	m := New(tuning, WithLogger(zerolog.New(&buf)))
	b := newBody(true)

	step(m, b, 16, jumpPress)
	entries := m.History().Entries()
	require.NotEmpty(t, entries)

	var sawJump bool
	for _, e := range entries {
		if e.Machine == "action" && e.To == cfg.StateJumping.String() {
			sawJump = true
			assert.Equal(t, causeJump, e.Cause)
			assert.Equal(t, 16.0, e.At)
		}
	}
	assert.True(t, sawJump)
	assert.Contains(t, buf.String(), `"machine":"action"`)
	assert.Contains(t, buf.String(), `"to":"jumping"`)
}

func TestHistoryRing(t *testing.T) {
	var h History
	_, ok := h.Last()
	assert.False(t, ok)

	for i := 0; i < HistorySize+3; i++ {
		h.add(Transition{At: float64(i)})
	}
	entries := h.Entries()
	require.Len(t, entries, HistorySize)
	assert.Equal(t, 3.0, entries[0].At)
	last, _ := h.Last()
	assert.Equal(t, float64(HistorySize+2), last.At)

	h.Clear()
	assert.Equal(t, 0, h.Len())
}

func TestReset(t *testing.T) {
	m, _ := newModel()
	b := newBody(true)
	step(m, b, 16, boostPress)
	step(m, b, 16, Input{DashPressed: true, Right: true})

	m.Reset()
	assert.Equal(t, cfg.Grounded, m.Movement())
	assert.Equal(t, cfg.StateIdle, m.Action())
	assert.Equal(t, cfg.BoostIdle, m.Boost())
	assert.Equal(t, cfg.ChargeIdle, m.Charge())
	assert.Equal(t, 300.0, m.Energy().Current())
	assert.Equal(t, 0, m.History().Len())
	for name, remaining := range m.Timers() {
		assert.Zero(t, remaining, name)
	}
}

func TestInvariantsHoldUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m, _ := newModel()
	b := newBody(true)
	wall := rightWall()
	jumps := []EventKind{EventJump, EventDoubleJump, EventBoostJump, EventChargeJump, EventWallKick, EventWallRun}

	coin := func() bool { return rng.Intn(3) == 0 }
	for i := 0; i < 5000; i++ {
		b.contacts = Contacts{Down: coin(), Right: coin(), Left: rng.Intn(8) == 0}
		if rng.Intn(4) == 0 {
			b.vx = rng.Float64()*800 - 400
			b.vy = rng.Float64()*1000 - 500
		}
		in := Input{
			Left: coin(), Right: coin(), Up: coin(), Down: coin(),
			Jump: coin(), Boost: coin(),
			JumpPressed: coin(), JumpReleased: coin(), BoostPressed: coin(),
			DashPressed: rng.Intn(6) == 0, ShootPressed: coin(), DownPressed: coin(),
			LeftPressed: rng.Intn(6) == 0, RightPressed: rng.Intn(6) == 0,
		}
		fb := step(m, b, float64(1+rng.Intn(40)), in, wall)

		e := m.Energy()
		require.GreaterOrEqual(t, e.Current(), 0.0)
		require.LessOrEqual(t, e.Current(), e.Max())

		if fb.Boost == cfg.BoostActive {
			require.Greater(t, m.Timers()["boost"], 0.0, "tick %d", i)
			require.Equal(t, cfg.ChargeIdle, fb.Charge, "tick %d", i)
		}
		if fb.Action == cfg.StateSliding {
			require.Equal(t, cfg.Grounded, fb.Movement, "tick %d", i)
		}
		if fb.Action == cfg.StateWallSliding {
			require.Equal(t, cfg.Airborne, fb.Movement, "tick %d", i)
			require.NotEqual(t, cfg.WallNone, fb.WallSide, "tick %d", i)
		}
		if fb.Movement == cfg.Grounded {
			require.True(t, m.CanWallKick(), "tick %d", i)
			require.Zero(t, m.WallRunCount(), "tick %d", i)
			require.False(t, m.DoubleJumpUsed(), "tick %d", i)
		}

		n := 0
		for _, kind := range jumps {
			if fb.Has(kind) {
				n++
			}
		}
		require.LessOrEqual(t, n, 1, "tick %d", i)
	}
}

func TestFirstWallWins(t *testing.T) {
	left := resolv.NewObject(84, 0, 16, 300)
	right := rightWall()

	for _, tc := range []struct {
		name  string
		walls []*resolv.Object
		want  cfg.WallSide
	}{
		{"left listed first", []*resolv.Object{left, right}, cfg.WallLeft},
		{"right listed first", []*resolv.Object{right, left}, cfg.WallRight},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newModel()
			b := newBody(false)
			b.contacts.Left, b.contacts.Right = true, true
			b.vy = 100

			fb := step(m, b, 200, Input{}, tc.walls...)
			require.Equal(t, cfg.StateWallSliding, fb.Action)
			assert.Equal(t, tc.want, fb.WallSide)
		})
	}
}
