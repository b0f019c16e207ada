package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTuning stores the shared tuning. watcher may be nil when hot reload
// is off.
func CreateTuning(ecs *ecs.ECS, tuning *cfg.Tuning, path string, watcher *cfg.Watcher) *donburi.Entry {
	entry := archetypes.Tuning.Spawn(ecs)
	components.Tuning.SetValue(entry, components.TuningData{
		Tuning:  tuning,
		Path:    path,
		Watcher: watcher,
	})
	return entry
}
