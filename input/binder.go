package input

import (
	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
)

// Binder turns semantic actions into Intent/RunControl writes on the
// actor entity. It only ever sets request flags between ticks; the
// simulation systems consume them.
type Binder struct {
	world *engine.World
	actor core.Entity
}

// NewBinder creates a binder for the given actor
func NewBinder(world *engine.World, actor core.Entity) *Binder {
	return &Binder{world: world, actor: actor}
}

// Apply writes the component changes for one action. Unknown or None
// actions are ignored. Returns false for ActionQuit so the caller can
// shut down.
func (b *Binder) Apply(action Action) bool {
	c := &b.world.Components

	switch action {
	case ActionQuit:
		return false

	case ActionRunLeft:
		b.run(-1, 0, false)
	case ActionRunRight:
		b.run(1, 0, false)
	case ActionRunLeftBoost:
		b.run(-1, 0, true)
	case ActionRunRightBoost:
		b.run(1, 0, true)
	case ActionRunFar:
		b.run(0, 1, false)
	case ActionRunNear:
		b.run(0, -1, false)

	case ActionJumpHappy:
		intent, _ := c.Intent.Get(b.actor)
		intent.HappyJump = true
		intent.JumpType = component.JumpHappy
		c.Intent.Set(b.actor, intent)
	case ActionJumpPowerful:
		intent, _ := c.Intent.Get(b.actor)
		intent.HappyJump = true
		intent.JumpType = component.JumpPowerful
		c.Intent.Set(b.actor, intent)

	case ActionSleepToggle:
		intent, _ := c.Intent.Get(b.actor)
		intent.Sleeping = !intent.Sleeping
		c.Intent.Set(b.actor, intent)

	case ActionAlert:
		b.flag(func(in *component.IntentComponent) { in.Alert = true })
	case ActionPouncePrep:
		b.flag(func(in *component.IntentComponent) { in.PouncePrep = true })
	case ActionNoseBoop:
		b.flag(func(in *component.IntentComponent) { in.NoseBoop = true })
	case ActionCheekPet:
		b.flag(func(in *component.IntentComponent) { in.CheekPet = true })
	case ActionEarLeft:
		b.flag(func(in *component.IntentComponent) { in.EarLeft = true })
	case ActionEarRight:
		b.flag(func(in *component.IntentComponent) { in.EarRight = true })
	case ActionTailFlick:
		b.flag(func(in *component.IntentComponent) { in.TailFlick = true })
	case ActionStartle:
		b.flag(func(in *component.IntentComponent) { in.Startled = true })
	case ActionSubtleWiggle:
		b.flag(func(in *component.IntentComponent) { in.SubtleWiggle = true })
	}

	return true
}

func (b *Binder) run(moveX, moveZ float64, boost bool) {
	c := &b.world.Components
	req, _ := c.RunCtl.Get(b.actor)
	req.MoveX = moveX
	req.MoveZ = moveZ
	req.Boost = boost
	c.RunCtl.Set(b.actor, req)
}

func (b *Binder) flag(set func(*component.IntentComponent)) {
	c := &b.world.Components
	intent, _ := c.Intent.Get(b.actor)
	set(&intent)
	c.Intent.Set(b.actor, intent)
}
