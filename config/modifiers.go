package config

// Op is how a modifier combines with the value it adjusts.
type Op string

const (
	OpMul Op = "mul"
	OpAdd Op = "add"
	OpSet Op = "set"
)

func (o Op) Valid() bool {
	return o == OpMul || o == OpAdd || o == OpSet
}

// Modifier adjusts one tuning key without touching the table.
type Modifier struct {
	Key     string  `yaml:"key"`
	Op      Op      `yaml:"op"`
	Value   float64 `yaml:"value"`
	Enabled bool    `yaml:"enabled"`
	Source  string  `yaml:"source"`
}

// Modifiers is an ordered list of adjustments, applied in insertion order
// every time a value is read.
type Modifiers struct {
	list []Modifier
}

func (m *Modifiers) Add(mod Modifier) {
	m.list = append(m.list, mod)
}

// Remove drops every modifier for key and returns how many were removed.
func (m *Modifiers) Remove(key string) int {
	return m.removeWhere(func(mod Modifier) bool { return mod.Key == key })
}

// RemoveSource drops every modifier added by source.
func (m *Modifiers) RemoveSource(source string) int {
	return m.removeWhere(func(mod Modifier) bool { return mod.Source == source })
}

func (m *Modifiers) removeWhere(match func(Modifier) bool) int {
	kept := m.list[:0]
	removed := 0
	for _, mod := range m.list {
		if match(mod) {
			removed++
			continue
		}
		kept = append(kept, mod)
	}
	m.list = kept
	return removed
}

// SetEnabled toggles every modifier for key.
func (m *Modifiers) SetEnabled(key string, enabled bool) {
	for i := range m.list {
		if m.list[i].Key == key {
			m.list[i].Enabled = enabled
		}
	}
}

func (m *Modifiers) ForKey(key string) []Modifier {
	var out []Modifier
	for _, mod := range m.list {
		if mod.Key == key {
			out = append(out, mod)
		}
	}
	return out
}

func (m *Modifiers) All() []Modifier {
	return append([]Modifier(nil), m.list...)
}

func (m *Modifiers) Len() int {
	return len(m.list)
}

// Eval applies the enabled modifiers for key to base.
func (m *Modifiers) Eval(key string, base float64) float64 {
	v := base
	for _, mod := range m.list {
		if !mod.Enabled || mod.Key != key {
			continue
		}
		switch mod.Op {
		case OpMul:
			v *= mod.Value
		case OpAdd:
			v += mod.Value
		case OpSet:
			v = mod.Value
		}
	}
	return v
}
