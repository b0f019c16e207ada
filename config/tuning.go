package config

// tableSource tags modifiers that were declared in a tuning file so a reload
// can replace them without touching modifiers added at runtime.
const tableSource = "table"

// Tuning is the read path the ability core uses for every numeric value and
// feature flag. Nothing is cached: each read evaluates the table and the
// modifiers as they are right now.
type Tuning struct {
	table *Table
	mods  Modifiers
}

func NewTuning(table *Table) *Tuning {
	t := &Tuning{}
	t.SetTable(table)
	return t
}

// SetTable swaps the table, replacing the modifiers it declared.
func (t *Tuning) SetTable(table *Table) {
	if table == nil {
		table = DefaultTable()
	}
	t.table = table
	t.mods.RemoveSource(tableSource)
	for _, mod := range table.Modifiers {
		mod.Source = tableSource
		t.mods.Add(mod)
	}
}

func (t *Tuning) Table() *Table {
	return t.table
}

func (t *Tuning) Modifiers() *Modifiers {
	return &t.mods
}

func (t *Tuning) Version() string {
	return t.table.Version
}

// Num returns the modified value of key, or the modified zero when the key
// is unknown everywhere.
func (t *Tuning) Num(key string) float64 {
	base, _ := t.table.Lookup(key)
	return t.mods.Eval(key, base)
}

// Enabled reports a feature flag. Modifiers can flip flags: the flag reads as
// 1 or 0 before evaluation and is enabled when the result is non-zero.
func (t *Tuning) Enabled(flag string) bool {
	base := 0.0
	if t.table.Flag(flag) {
		base = 1
	}
	return t.mods.Eval(flag, base) != 0
}
