package systems

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/automoto/doomerang-abilities/components"
	cfg "github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the state machines, energy and timers of the first actor.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := tags.Actor.First(ecs.World)
	if !ok {
		return
	}
	version := "-"
	if te, ok := components.Tuning.First(ecs.World); ok {
		version = components.Tuning.Get(te).Tuning.Version()
	}
	ebitenutil.DebugPrintAt(screen, hudText(e, version), 8, 8)
}

func hudText(e *donburi.Entry, version string) string {
	data := components.Ability.Get(e)
	fb := data.Feedback
	physics := components.Physics.Get(e)

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  tuning %s\n", ebiten.ActualTPS(), version)
	fmt.Fprintf(&b, "move %s  action %s  wall %s\n", fb.Movement, fb.Action, fb.WallSide)
	fmt.Fprintf(&b, "boost %s  charge %s %.0f%%\n", fb.Boost, fb.Charge, fb.ChargePercent)
	fmt.Fprintf(&b, "energy %.0f%%  speed x%.2f  tag %s\n", fb.EnergyPercent, fb.SpeedMultiplier, fb.Tag)
	en := data.Model.Energy()
	fmt.Fprintf(&b, "energy %.0f/%.0f  chained %t  last use %s\n",
		en.Current(), en.Max(), en.Chained(), sinceText(en.SinceLastUse()))
	fmt.Fprintf(&b, "v %.0f, %.0f  contacts d%t l%t r%t\n",
		physics.SpeedX, physics.SpeedY, physics.Contacts.Down, physics.Contacts.Left, physics.Contacts.Right)

	timers := data.Model.Timers()
	names := make([]string, 0, len(timers))
	for name := range timers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if remaining := timers[name]; remaining > 0 {
			fmt.Fprintf(&b, "%s %.0fms  ", name, remaining)
		}
	}
	b.WriteString("\n")

	if cfg.Debug.LogMachines {
		for _, tr := range data.Model.History().Entries() {
			fmt.Fprintf(&b, "%s %s>%s (%s)\n", tr.Machine, tr.From, tr.To, tr.Cause)
		}
	}
	return b.String()
}

func sinceText(ms float64) string {
	if math.IsInf(ms, 1) {
		return "-"
	}
	return fmt.Sprintf("%.0fms", ms)
}
