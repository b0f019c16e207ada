package tags

import "github.com/yohamta/donburi"

var (
	Actor  = donburi.NewTag().SetName("Actor")
	Ground = donburi.NewTag().SetName("Ground")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvWall  = "wall"
	ResolvActor = "actor"
)
