package system

import (
	"testing"
	"time"

	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/engine"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{X: 1, Y: 2, Z: 3})
	w.Components.Velocity.Set(e, component.VelocityComponent{VX: 2, VY: 4, VZ: -1})

	NewMovementSystem(w).Update(500 * time.Millisecond)

	tf, _ := w.Components.Transform.Get(e)
	if tf.X != 2 || tf.Y != 4 || tf.Z != 2.5 {
		t.Errorf("unexpected transform after integration: %+v", tf)
	}
}

func TestMovementClampsToGround(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{Y: 0.1})
	w.Components.Velocity.Set(e, component.VelocityComponent{VY: -10})

	NewMovementSystem(w).Update(time.Second)

	tf, _ := w.Components.Transform.Get(e)
	if tf.Y != 0 {
		t.Errorf("expected ground clamp to 0, got %v", tf.Y)
	}
}

func TestMovementZeroDeltaIsNoOp(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{X: 5})
	w.Components.Velocity.Set(e, component.VelocityComponent{VX: 100})

	NewMovementSystem(w).Update(0)

	tf, _ := w.Components.Transform.Get(e)
	if tf.X != 5 {
		t.Errorf("zero-length tick moved the entity to %v", tf.X)
	}
}

func TestMovementSkipsEntitiesWithoutTransform(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	w.Components.Velocity.Set(e, component.VelocityComponent{VX: 1})

	// Velocity with no transform is a valid state, not a fault
	NewMovementSystem(w).Update(time.Second)
	if w.Components.Transform.Has(e) {
		t.Error("integrator invented a transform")
	}
}
