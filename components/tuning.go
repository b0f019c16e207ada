package components

import (
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
)

// TuningData is the shared tuning every ability model reads, plus the file
// it was loaded from and the watcher feeding reloads.
type TuningData struct {
	Tuning  *cfg.Tuning
	Path    string
	Watcher *cfg.Watcher
}

var Tuning = donburi.NewComponentType[TuningData]()
