package system

import (
	"testing"
	"time"

	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/constant"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
	"github.com/tabbylab/whisker/entity"
)

// newPipeline assembles the full system pipeline exactly as the
// application shell does
func newPipeline(t *testing.T) (*engine.World, core.Entity, *engine.MockTimeProvider) {
	t.Helper()
	w := engine.NewWorld()
	clock := engine.NewMockTimeProvider(time.Unix(20000, 0))
	w.AddSystem(NewRunControlSystem(w))
	w.AddSystem(NewJumpSystem(w))
	w.AddSystem(NewMovementSystem(w))
	w.AddSystem(NewBehaviorSystem(w, clock))
	actor := entity.SpawnCat(w, 0, 0, 0)
	return w, actor, clock
}

func TestPipelineJumpMovesActorWithinOneTick(t *testing.T) {
	w, actor, _ := newPipeline(t)

	setIntent(w, actor, func(in *component.IntentComponent) {
		in.HappyJump = true
		in.JumpType = component.JumpPowerful
	})
	w.Update(testDT)

	// The integrator runs after the impulse system, so the new velocity
	// already moved the transform this tick
	tf, _ := w.Components.Transform.Get(actor)
	if tf.Y <= 0 {
		t.Errorf("expected lift-off within the same tick, y=%v", tf.Y)
	}
}

func TestPipelinePounceRunGetsBoostedSpeed(t *testing.T) {
	w, actor, _ := newPipeline(t)

	w.Components.Behavior.Set(actor, component.BehaviorComponent{State: component.BehaviorPouncing})
	setRun(w, actor, -1, 0, false)
	w.Update(testDT)

	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VX != -constant.RunBoostSpeed {
		t.Errorf("expected boosted pounce run %v, got %v", -constant.RunBoostSpeed, vel.VX)
	}
}

func TestPipelineFullPounceSequenceWhileRunning(t *testing.T) {
	w, actor, clock := newPipeline(t)

	setIntent(w, actor, func(in *component.IntentComponent) {
		in.Alert = true
		in.PouncePrep = true
	})
	setRun(w, actor, 1, 0, false)
	w.Update(testDT)

	if got := state(w, actor); got != component.BehaviorPouncePrep {
		t.Fatalf("expected pouncePrep, got %v", got)
	}

	// Keep running through the whole sequence; every tick re-issues the
	// request as a held key would
	total := constant.PouncePrepDuration + constant.PounceDuration + constant.RecoverDuration
	step := 20 * time.Millisecond
	for elapsed := time.Duration(0); elapsed <= total; elapsed += step {
		clock.Advance(step)
		setRun(w, actor, 1, 0, false)
		w.Update(step)

		if s := state(w, actor); s.PounceActive() {
			vel, _ := w.Components.Velocity.Get(actor)
			if vel.VX != constant.RunBoostSpeed {
				t.Fatalf("state %v: expected boost assist, vx=%v", s, vel.VX)
			}
		}
	}

	if got := state(w, actor); got != component.BehaviorIdle {
		t.Errorf("expected idle after the full sequence, got %v", got)
	}

	tf, _ := w.Components.Transform.Get(actor)
	if tf.X <= 0 {
		t.Errorf("actor should have moved forward, x=%v", tf.X)
	}
}

func TestPipelineStaticPropsAreUntouched(t *testing.T) {
	w, _, _ := newPipeline(t)
	props := entity.SpawnFurniture(w)

	for i := 0; i < 10; i++ {
		w.Update(testDT)
	}

	for _, p := range props {
		tf, _ := w.Components.Transform.Get(p)
		if tf.Y != 0 {
			t.Errorf("prop %d moved to y=%v", p, tf.Y)
		}
	}
}
