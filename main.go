package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/scenes"
	"github.com/automoto/doomerang-abilities/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame(scene scenes.Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	settingsDir := flag.String("config", ".", "directory searched for abilitylab.yaml")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load settings")
	}
	settings.Apply()

	setupLogger(settings.LogLevel)

	level, err := loadLevel(settings.LevelPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", settings.LevelPath).Msg("load level")
	}
	tuning, err := loadTuning(settings.TuningPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", settings.TuningPath).Msg("load tuning")
	}

	var watcher *config.Watcher
	if settings.HotReload && settings.TuningPath != "" {
		watcher, err = config.NewWatcher(filepath.Dir(settings.TuningPath))
		if err != nil {
			log.Warn().Err(err).Msg("tuning hot reload disabled")
			watcher = nil
		}
	}

	scene := scenes.NewSandboxScene(scenes.SandboxSetup{
		Level:      level,
		LevelPath:  settings.LevelPath,
		Tuning:     tuning,
		TuningPath: settings.TuningPath,
		Watcher:    watcher,
		Logger:     log.Logger.With().Str("component", "ability").Logger(),
	})
	defer func() {
		if err := scene.Close(); err != nil {
			log.Warn().Err(err).Msg("close watcher")
		}
	}()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("ability sandbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(settings.TPS)

	log.Info().Str("tuning", tuning.Version()).Int("tps", settings.TPS).Msg("starting")
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// loadLevel reads a TMX level, or returns nil for the built-in sandbox.
func loadLevel(path string) (*leveldata.LevelData, error) {
	if path == "" {
		return nil, nil
	}
	return leveldata.LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// loadTuning reads a tuning file over the defaults, or returns the defaults
// when no file is configured.
func loadTuning(path string) (*config.Tuning, error) {
	if path == "" {
		return config.NewTuning(config.DefaultTable()), nil
	}
	table, err := config.LoadTable(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return config.NewTuning(table), nil
}
