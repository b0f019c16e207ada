package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SettingsFile is the optional sandbox settings file name, without extension.
const SettingsFile = "abilitylab"

// Settings holds the sandbox host options. None of these reach the ability
// core.
type Settings struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	TuningPath  string `mapstructure:"tuningPath"`
	LevelPath   string `mapstructure:"levelPath"`
	LogLevel    string `mapstructure:"logLevel"`
	TPS         int    `mapstructure:"tps"`
	HotReload   bool   `mapstructure:"hotReload"`
	DrawWalls   bool   `mapstructure:"drawWalls"`
	LogMachines bool   `mapstructure:"logMachines"`
}

// LoadSettings reads abilitylab.yaml from dir if present, applies ABILITYLAB_*
// environment overrides and fills the rest with defaults.
func LoadSettings(dir string) (Settings, error) {
	v := viper.New()
	v.SetDefault("width", C.Width)
	v.SetDefault("height", C.Height)
	v.SetDefault("tuningPath", "")
	v.SetDefault("levelPath", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("tps", 60)
	v.SetDefault("hotReload", true)
	v.SetDefault("drawWalls", true)
	v.SetDefault("logMachines", false)

	v.SetEnvPrefix("ABILITYLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(SettingsFile)
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	return s, nil
}

// Apply copies the settings into the global host configuration.
func (s Settings) Apply() {
	C.Width = s.Width
	C.Height = s.Height
	Debug.DrawWalls = s.DrawWalls
	Debug.LogMachines = s.LogMachines
}
