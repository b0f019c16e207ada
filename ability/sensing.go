package ability

import (
	"math"

	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/gamemath"
	"github.com/solarlune/resolv"
)

// sense derives the movement state and wall contact from the body.
func (m *Model) sense(walls []*resolv.Object) {
	contacts := m.body.Contacts()
	_, vy := m.body.Velocity()

	// The tick after a jump the body may still report ground contact.
	grounded := contacts.Down && !(m.justJumped && vy < 0)
	m.justJumped = false

	if grounded {
		m.movement.TryTransition(cfg.Grounded, nil, causeSensing)
	} else {
		m.movement.TryTransition(cfg.Airborne, nil, causeSensing)
	}

	m.senseWall(contacts, walls)
}

func (m *Model) senseWall(contacts Contacts, walls []*resolv.Object) {
	sliding := m.action.Is(cfg.StateWallSliding)
	side := m.findWall(contacts, walls, sliding)

	switch {
	case side == cfg.WallNone:
		if sliding {
			m.settleAction(causeWallLost)
		}
	case !sliding:
		if m.action.Is(cfg.StateDashing) || m.action.Is(cfg.StateSliding) {
			return
		}
		m.startWallSlide(side, causeWallSlide)
	case side != m.wallSide:
		// A new side is a new contact: leave the slide and enter it again.
		m.log.Debug().Stringer("from", m.wallSide).Stringer("to", side).Msg("wall contact changed side")
		m.settleAction(causeWallSwap)
		m.startWallSlide(side, causeWallSwap)
	}
}

// findWall returns the side of the first wall the actor is in contact with.
// Entering contact needs a fall faster than the threshold, or a fast rising
// approach; staying in contact needs only the touch.
func (m *Model) findWall(contacts Contacts, walls []*resolv.Object, sliding bool) cfg.WallSide {
	if m.Grounded() || !(contacts.Left || contacts.Right) {
		return cfg.WallNone
	}
	actor := m.body.Bounds()
	if actor == nil {
		return cfg.WallNone
	}

	if !sliding {
		vx, vy := m.body.Velocity()
		falling := vy > m.tuning.Num(cfg.KeyWallFallThreshold)
		fastRise := vy < 0 && math.Abs(vx) > m.tuning.Num(cfg.KeyWallMomentumMinSpeed)
		if !falling && !fastRise {
			return cfg.WallNone
		}
	}

	reach := m.tuning.Num(cfg.KeyWallContactReach)
	for _, wall := range walls {
		if wall == nil || !gamemath.Overlaps(actor, wall, reach) {
			continue
		}
		side := cfg.WallLeft
		if gamemath.CenterX(actor) < gamemath.CenterX(wall) {
			side = cfg.WallRight
		}
		if (side == cfg.WallRight && contacts.Right) || (side == cfg.WallLeft && contacts.Left) {
			return side
		}
	}
	return cfg.WallNone
}

func (m *Model) startWallSlide(side cfg.WallSide, cause string) {
	vx, vy := m.body.Velocity()
	boosted := false

	// A fast rising approach converts horizontal speed into lift.
	if vy < 0 && math.Abs(vx) > m.tuning.Num(cfg.KeyWallMomentumMinSpeed) {
		m.body.SetVelocityY(vy - math.Abs(vx)*m.tuning.Num(cfg.KeyWallMomentumConversion))
		m.body.SetVelocityX(vx * m.tuning.Num(cfg.KeyWallMomentumRetain))
		boosted = m.boost.Is(cfg.BoostActive) || m.airMomentum.Active()
		m.flash(cfg.TagMomentum)
	}

	m.wallSide = side
	m.boostedWallContact = boosted || m.boost.Is(cfg.BoostActive)
	m.action.TryTransition(cfg.StateWallSliding, nil, cause)
}
