package components

import (
	"github.com/automoto/doomerang-abilities/ability"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is the host-owned body the ability model drives. Speeds are in
// units per second.
type PhysicsData struct {
	SpeedX     float64
	SpeedY     float64
	Contacts   ability.Contacts
	OnGround   *resolv.Object
	BaseHeight float64 // collider height at a height scale of 1
}

var Physics = donburi.NewComponentType[PhysicsData]()
