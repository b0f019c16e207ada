package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity of the sandbox lives on.
const Default ecs.LayerID = iota

// ActorConfig contains the sandbox actor's body dimensions and spawn point
type ActorConfig struct {
	CollisionWidth  float64
	CollisionHeight float64
	SpawnX          float64
	SpawnY          float64
}

// PhysicsConfig contains the host-side physics values. The ability core never
// reads these; it only consumes contact flags and velocity.
type PhysicsConfig struct {
	Gravity      float64 // units/s^2
	MaxFallSpeed float64 // units/s
	MaxRiseSpeed float64 // units/s, negative is up
	ContactReach float64 // distance checked for touching flags
}

// VisualConfig contains the display palette keyed by visual tag
type VisualConfig struct {
	Colors          map[string]color.RGBA
	HeightTweenSecs float32 // time to ease back to full height
	MinAlpha        float64
}

type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Actor ActorConfig
var Physics PhysicsConfig
var Visual VisualConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawWalls   bool
	LogMachines bool
}

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Visual tags reported to the rendering collaborator.
const (
	TagNormal         = "normal"
	TagRunning        = "running"
	TagCrouch         = "crouch"
	TagSlide          = "slide"
	TagBoostSlide     = "boost-slide"
	TagBoostActive    = "boost-active"
	TagBoostArmed     = "boost-armed"
	TagSprint         = "sprint"
	TagChargeCharging = "charge-charging"
	TagChargeFull     = "charge-full"
	TagJump           = "jump"
	TagDoubleJump     = "double-jump"
	TagBoostJump      = "boost-jump"
	TagChargeJump     = "charge-jump"
	TagDash           = "dash"
	TagBoostDash      = "boost-dash"
	TagAirDash        = "air-dash"
	TagWallSlide      = "wall-slide"
	TagBoostWallSlide = "boost-wall-slide"
	TagWallPeakKick   = "wall-peak-kick"
	TagWallSlideKick  = "wall-slide-kick"
	TagWallRun        = "wall-run"
	TagMomentum       = "momentum"
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Actor = ActorConfig{
		CollisionWidth:  28,
		CollisionHeight: 32,
		SpawnX:          64,
		SpawnY:          200,
	}

	Physics = PhysicsConfig{
		Gravity:      1200,
		MaxFallSpeed: 700,
		MaxRiseSpeed: -900,
		ContactReach: 1,
	}

	Visual = VisualConfig{
		HeightTweenSecs: 0.12,
		MinAlpha:        0.7,
		Colors: map[string]color.RGBA{
			TagNormal:         rgb(0x3498db),
			TagRunning:        rgb(0x3498db),
			TagCrouch:         rgb(0xff0000),
			TagSlide:          rgb(0x54a0ff),
			TagBoostSlide:     rgb(0xff8c00),
			TagBoostActive:    rgb(0xff6b6b),
			TagBoostArmed:     rgb(0xffb3b3),
			TagSprint:         rgb(0xff6b6b),
			TagChargeCharging: rgb(0xfeca57),
			TagChargeFull:     rgb(0xff8c00),
			TagJump:           rgb(0x3498db),
			TagDoubleJump:     rgb(0xffff00),
			TagBoostJump:      rgb(0xffff00),
			TagChargeJump:     rgb(0x00ff00),
			TagDash:           rgb(0xff0000),
			TagBoostDash:      rgb(0x9400d3),
			TagAirDash:        rgb(0x00ffff),
			TagWallSlide:      rgb(0x00aaff),
			TagBoostWallSlide: rgb(0x00ffaa),
			TagWallPeakKick:   rgb(0x00ffff),
			TagWallSlideKick:  rgb(0xff6600),
			TagWallRun:        rgb(0x00ffff),
			TagMomentum:       rgb(0xffff00),
		},
	}
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}

// ColorFor returns the palette color of a visual tag, falling back to the
// normal color for unknown tags.
func ColorFor(tag string) color.RGBA {
	if c, ok := Visual.Colors[tag]; ok {
		return c
	}
	return Visual.Colors[TagNormal]
}
