// Package leveldata reads sandbox levels from Tiled TMX files. It has no
// dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

import "errors"

// ErrNoWalls is returned when a level declares no wall surfaces.
var ErrNoWalls = errors.New("level has no walls")

// Layer and object group names read from a TMX file.
const (
	SolidTileLayer = "solid"
	WallGroup      = "Walls"
	GroundGroup    = "Ground"
	SpawnGroup     = "Spawn"
)

// LevelData holds the collision-relevant data of a level.
type LevelData struct {
	Walls     []Rect // vertical surfaces the actor can slide on and kick off
	Ground    []Rect // solid surfaces that are not walls
	Spawn     SpawnPoint
	MapWidth  int
	MapHeight int
}

// Rect is an axis-aligned rectangle in level space.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is the actor's start position.
type SpawnPoint struct {
	X, Y float64
}
