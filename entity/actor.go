package entity

import (
	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
)

// SpawnCat creates the actor entity at the given position with the full
// component set the simulation pipeline operates on. JumpState is not
// attached here; the jump system creates it lazily on the first jump
// attempt.
func SpawnCat(w *engine.World, x, y, z float64) core.Entity {
	e := w.CreateEntity()
	c := &w.Components

	c.Kind.Set(e, component.KindComponent{Kind: component.KindCat})
	c.Transform.Set(e, component.TransformComponent{X: x, Y: y, Z: z, Scale: 1})
	c.Velocity.Set(e, component.VelocityComponent{})
	c.Behavior.Set(e, component.BehaviorComponent{State: component.BehaviorIdle})
	c.Intent.Set(e, component.IntentComponent{})
	c.RunCtl.Set(e, component.RunControlComponent{})
	c.Animation.Set(e, component.AnimationComponent{})

	return e
}
