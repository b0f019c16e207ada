package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownProfile    = errors.New("unknown profile")
	ErrInvalidModifierOp = errors.New("invalid modifier op")
)

// Profile is one movement-system version of the tuning table.
type Profile struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Values      map[string]float64 `yaml:"values"`
	Flags       map[string]bool    `yaml:"flags"`
}

// Table is the versioned ability parameter table. Values in the active
// profile shadow the base values.
type Table struct {
	Version   string             `yaml:"version"`
	Values    map[string]float64 `yaml:"values"`
	Flags     map[string]bool    `yaml:"flags"`
	Profiles  map[string]Profile `yaml:"profiles"`
	Modifiers []Modifier         `yaml:"modifiers"`
}

// Lookup resolves key through the active profile, the base values, a derived
// key and finally the documented fallback.
func (t *Table) Lookup(key string) (float64, bool) {
	if t != nil {
		if p, ok := t.Profiles[t.Version]; ok {
			if v, ok := p.Values[key]; ok {
				return v, true
			}
		}
		if v, ok := t.Values[key]; ok {
			return v, true
		}
	}
	if alias, ok := derived[key]; ok {
		return t.Lookup(alias)
	}
	return Fallback(key)
}

// Flag resolves a feature flag. Unknown flags are disabled.
func (t *Table) Flag(name string) bool {
	if t == nil {
		return false
	}
	if p, ok := t.Profiles[t.Version]; ok {
		if v, ok := p.Flags[name]; ok {
			return v
		}
	}
	return t.Flags[name]
}

// Profile returns the active profile.
func (t *Table) Profile() (Profile, bool) {
	p, ok := t.Profiles[t.Version]
	return p, ok
}

// Validate checks the version and the modifier ops.
func (t *Table) Validate() error {
	if len(t.Profiles) > 0 {
		if _, ok := t.Profiles[t.Version]; !ok {
			return fmt.Errorf("config: version %q: %w", t.Version, ErrUnknownProfile)
		}
	}
	for _, m := range t.Modifiers {
		if !m.Op.Valid() {
			return fmt.Errorf("config: modifier %s op %q: %w", m.Key, m.Op, ErrInvalidModifierOp)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	out := &Table{
		Version:   t.Version,
		Values:    cloneValues(t.Values),
		Flags:     cloneFlags(t.Flags),
		Profiles:  make(map[string]Profile, len(t.Profiles)),
		Modifiers: append([]Modifier(nil), t.Modifiers...),
	}
	for name, p := range t.Profiles {
		out.Profiles[name] = Profile{
			Name:        p.Name,
			Description: p.Description,
			Values:      cloneValues(p.Values),
			Flags:       cloneFlags(p.Flags),
		}
	}
	return out
}

// Overlay merges other on top of t. Maps merge key by key; modifiers append.
func (t *Table) Overlay(other *Table) {
	if other.Version != "" {
		t.Version = other.Version
	}
	t.Values = mergeValues(t.Values, other.Values)
	t.Flags = mergeFlags(t.Flags, other.Flags)
	if t.Profiles == nil {
		t.Profiles = make(map[string]Profile)
	}
	for name, p := range other.Profiles {
		cur := t.Profiles[name]
		if p.Name != "" {
			cur.Name = p.Name
		}
		if p.Description != "" {
			cur.Description = p.Description
		}
		cur.Values = mergeValues(cur.Values, p.Values)
		cur.Flags = mergeFlags(cur.Flags, p.Flags)
		t.Profiles[name] = cur
	}
	t.Modifiers = append(t.Modifiers, other.Modifiers...)
}

// LoadTable reads a YAML tuning file and overlays it on the default table.
func LoadTable(fsys fs.FS, path string) (*Table, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return ParseTable(data)
}

// ParseTable overlays YAML tuning data on the default table.
func ParseTable(data []byte) (*Table, error) {
	var file Table
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: unmarshal table: %w", err)
	}
	table := DefaultTable()
	table.Overlay(&file)
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// DefaultTable builds the built-in table with both movement-system versions.
// v2 is active.
func DefaultTable() *Table {
	return &Table{
		Version: "v2",
		Values: map[string]float64{
			KeyMoveSpeed:        140,
			KeyMoveAirControl:   1,
			KeyMoveCrouchFactor: 0.5,
			KeyGroundFriction:   0.6,
			KeyAirResistance:    0.95,

			KeyJumpVelocity:       -450,
			KeyJumpBuffer:         75,
			KeyJumpCoyote:         100,
			KeyJumpReleaseDamping: 0.5,
			KeyDoubleJumpFactor:   1.1,
			KeyBoostJumpVelocity:  -550,
			KeyChargeJumpVelocity: -800,

			KeyChargeSpeed:    128,
			KeyChargeDuration: 600,

			KeyWallFallThreshold: 50,
			KeyWallSlideSpeed:    25,
			KeyWallKickMomentum:  150,
			KeyWallRunMax:        2,

			KeyEnergyMax:            1000,
			KeyEnergyBase:           300,
			KeyEnergyChainExtension: 200,
			KeyEnergyCooldownRate:   500,
			KeyEnergyCooldown:       500,
			KeyEnergyChainJump:      200,
			KeyEnergyChainDash:      150,
			KeyEnergyChainWall:      300,
		},
		Flags: map[string]bool{
			FlagCanBoost:         true,
			FlagCanCharge:        true,
			FlagCanSlide:         true,
			FlagCanCrouch:        true,
			FlagCanBoostJump:     true,
			FlagCanChargeJump:    true,
			FlagCanDoubleJump:    true,
			FlagCanDash:          true,
			FlagCanAirDash:       true,
			FlagCanWallKick:      true,
			FlagCanWallRun:       true,
			FlagSprintHold:       false,
			FlagBoostBufferInAir: true,
			FlagBoostJumpSteer:   true,
		},
		Profiles: map[string]Profile{
			"v1": {
				Name:        "Traditional Movement",
				Description: "Hold to sprint, plain dash",
				Values: map[string]float64{
					KeyDashSpeed:    600,
					KeyDashDuration: 300,
					KeyDashCooldown: 1000,
					KeyBoostSpeed:   320,
				},
				Flags: map[string]bool{
					FlagSprintHold: true,
					FlagCanBoost:   false,
					FlagCanAirDash: false,
					FlagCanWallRun: false,
				},
			},
			"v2": {
				Name:        "Boost-Integrated Movement",
				Description: "Tap to boost, dash with air dash, ground slide",
				Values: map[string]float64{
					KeyDashSpeed:         500,
					KeyDashDuration:      200,
					KeyDashCooldown:      800,
					KeyDashBoostDuration: 300,
					KeyAirDashSpeed:      400,
					KeyAirDashDuration:   150,
					KeyBoostSpeed:        400,
					KeyBoostDuration:     350,
					KeyBoostAirMomentum:  300,
					KeySlideDuration:     800,
					KeySlideSpeed:        400,
				},
			},
		},
	}
}

func cloneValues(in map[string]float64) map[string]float64 {
	return mergeValues(nil, in)
}

func cloneFlags(in map[string]bool) map[string]bool {
	return mergeFlags(nil, in)
}

func mergeValues(dst, src map[string]float64) map[string]float64 {
	if dst == nil {
		dst = make(map[string]float64, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func mergeFlags(dst, src map[string]bool) map[string]bool {
	if dst == nil {
		dst = make(map[string]bool, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
