package components

import (
	"github.com/automoto/doomerang-abilities/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.LevelData
	Path  string // empty for the built-in sandbox
}

var Level = donburi.NewComponentType[LevelData]()
