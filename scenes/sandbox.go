package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/shared/leveldata"
	"github.com/automoto/doomerang-abilities/systems"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxSetup is what the sandbox scene is built from.
type SandboxSetup struct {
	Level      *leveldata.LevelData
	LevelPath  string
	Tuning     *cfg.Tuning
	TuningPath string
	Watcher    *cfg.Watcher // nil disables hot reload
	Logger     zerolog.Logger
}

// SandboxScene runs one actor through a level with the ability model.
type SandboxScene struct {
	ecs   *ecs.ECS
	setup SandboxSetup
	once  sync.Once
}

func NewSandboxScene(setup SandboxSetup) *SandboxScene {
	return &SandboxScene{setup: setup}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and tuning land before the model runs
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateAbilities)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateVisuals)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	s.ecs = ecs

	level := s.setup.Level
	if level == nil {
		level = leveldata.Sandbox(cfg.C.Width, cfg.C.Height)
	}
	factory.CreateLevel(ecs, level, s.setup.LevelPath)
	factory.CreateInput(ecs)
	factory.CreateTuning(ecs, s.setup.Tuning, s.setup.TuningPath, s.setup.Watcher)

	actor := factory.CreateActor(ecs, level.Spawn.X, level.Spawn.Y, s.setup.Tuning, s.setup.Logger)
	s.setup.Logger.Info().
		Int("walls", len(level.Walls)).
		Int("ground", len(level.Ground)).
		Uint64("actor", uint64(actor.Entity())).
		Msg("sandbox ready")

	if overlaps := level.Overlapping(); len(overlaps) > 0 {
		s.setup.Logger.Warn().Int("pairs", len(overlaps)).Msg("level has overlapping walls")
	}
}

// Close stops the tuning watcher.
func (s *SandboxScene) Close() error {
	if s.setup.Watcher == nil {
		return nil
	}
	return s.setup.Watcher.Close()
}
