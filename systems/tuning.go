package systems

import (
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning drains the tuning watcher without blocking and swaps in the
// reloaded table. It runs before UpdateAbilities so a reload lands between
// ticks.
func UpdateTuning(ecs *ecs.ECS) {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	data := components.Tuning.Get(entry)
	if data.Watcher == nil {
		return
	}

	for {
		select {
		case path, ok := <-data.Watcher.Events:
			if !ok {
				data.Watcher = nil
				return
			}
			if sameFile(path, data.Path) {
				reloadTuning(data)
			}
		case err, ok := <-data.Watcher.Errors:
			if !ok {
				data.Watcher = nil
				return
			}
			log.Warn().Err(err).Msg("tuning watcher")
		default:
			return
		}
	}
}

func sameFile(a, b string) bool {
	if b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// reloadTuning keeps the current table when the file does not parse.
func reloadTuning(data *components.TuningData) {
	dir, name := filepath.Split(data.Path)
	if dir == "" {
		dir = "."
	}
	table, err := cfg.LoadTable(os.DirFS(dir), name)
	if err != nil {
		log.Error().Err(err).Str("path", data.Path).Msg("tuning reload failed, keeping current values")
		return
	}
	data.Tuning.SetTable(table)
	log.Info().Str("path", data.Path).Str("version", table.Version).Msg("tuning reloaded")
}
