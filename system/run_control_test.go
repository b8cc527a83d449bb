package system

import (
	"testing"

	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/constant"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
	"github.com/tabbylab/whisker/entity"
)

func newRunWorld(t *testing.T) (*engine.World, core.Entity, *RunControlSystem) {
	t.Helper()
	w := engine.NewWorld()
	actor := entity.SpawnCat(w, 0, 0, 0)
	return w, actor, NewRunControlSystem(w)
}

func setRun(w *engine.World, e core.Entity, moveX, moveZ float64, boost bool) {
	w.Components.RunCtl.Set(e, component.RunControlComponent{MoveX: moveX, MoveZ: moveZ, Boost: boost})
}

func setBehavior(w *engine.World, e core.Entity, state component.BehaviorState) {
	w.Components.Behavior.Set(e, component.BehaviorComponent{State: state})
}

func TestRunAppliesBaseSpeed(t *testing.T) {
	w, actor, sys := newRunWorld(t)

	setRun(w, actor, 1, 0, false)
	sys.Update(testDT)

	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VX != constant.RunBaseSpeed {
		t.Errorf("expected base speed %v, got %v", constant.RunBaseSpeed, vel.VX)
	}
}

func TestRunBoostFlag(t *testing.T) {
	w, actor, sys := newRunWorld(t)

	setRun(w, actor, -1, 0, true)
	sys.Update(testDT)

	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VX != -constant.RunBoostSpeed {
		t.Errorf("expected boosted speed %v, got %v", -constant.RunBoostSpeed, vel.VX)
	}
}

func TestPounceStatesAlwaysBoost(t *testing.T) {
	states := []component.BehaviorState{
		component.BehaviorPouncePrep,
		component.BehaviorPouncing,
		component.BehaviorRecover,
	}

	for _, state := range states {
		w, actor, sys := newRunWorld(t)
		setBehavior(w, actor, state)
		setRun(w, actor, -1, 0, false)

		sys.Update(testDT)

		vel, _ := w.Components.Velocity.Get(actor)
		if vel.VX != -constant.RunBoostSpeed {
			t.Errorf("state %v: expected pounce-assist speed %v, got %v",
				state, -constant.RunBoostSpeed, vel.VX)
		}
	}
}

func TestDepthVelocityFromRequest(t *testing.T) {
	w, actor, sys := newRunWorld(t)

	setRun(w, actor, 0, 1, false)
	sys.Update(testDT)

	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VZ != constant.DepthRate {
		t.Errorf("expected depth rate %v, got %v", constant.DepthRate, vel.VZ)
	}
}

func TestDepthDecaysWithoutInput(t *testing.T) {
	w, actor, sys := newRunWorld(t)

	w.Components.Velocity.Set(actor, component.VelocityComponent{VZ: 2})
	sys.Update(testDT)

	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VZ != 2*constant.DepthDamping {
		t.Errorf("expected damped depth %v, got %v", 2*constant.DepthDamping, vel.VZ)
	}

	// Drive it below the snap threshold
	for i := 0; i < 100; i++ {
		sys.Update(testDT)
	}
	vel, _ = w.Components.Velocity.Get(actor)
	if vel.VZ != 0 {
		t.Errorf("expected hard snap to zero, got %v", vel.VZ)
	}
}

func TestDepthMomentumPreservedWhilePouncing(t *testing.T) {
	w, actor, sys := newRunWorld(t)

	setBehavior(w, actor, component.BehaviorPouncing)
	w.Components.Velocity.Set(actor, component.VelocityComponent{VZ: 2})
	sys.Update(testDT)

	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VZ != 2 {
		t.Errorf("pounce depth momentum was damped: got %v", vel.VZ)
	}
}

func TestRequestResetAfterApplication(t *testing.T) {
	w, actor, sys := newRunWorld(t)

	setRun(w, actor, 1, -1, true)
	sys.Update(testDT)

	req, _ := w.Components.RunCtl.Get(actor)
	if req.MoveX != 0 || req.MoveZ != 0 {
		t.Errorf("request not reset: %+v", req)
	}
	if !req.Boost {
		t.Error("boost flag must be preserved across the reset")
	}

	// A second tick with the zeroed request must stop lateral motion
	sys.Update(testDT)
	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VX != 0 {
		t.Errorf("movement continued without a re-issued request: vx=%v", vel.VX)
	}
}

func TestVerticalVelocityUntouched(t *testing.T) {
	w, actor, sys := newRunWorld(t)

	w.Components.Velocity.Set(actor, component.VelocityComponent{VY: 3})
	setRun(w, actor, 1, 1, true)
	sys.Update(testDT)

	vel, _ := w.Components.Velocity.Get(actor)
	if vel.VY != 3 {
		t.Errorf("run control modified vertical velocity: %v", vel.VY)
	}
}

func TestEntitiesWithoutBehaviorSkipped(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	w.Components.Velocity.Set(e, component.VelocityComponent{})
	w.Components.RunCtl.Set(e, component.RunControlComponent{MoveX: 1})

	NewRunControlSystem(w).Update(testDT)

	vel, _ := w.Components.Velocity.Get(e)
	if vel.VX != 0 {
		t.Error("run control applied to a non-actor entity")
	}
	req, _ := w.Components.RunCtl.Get(e)
	if req.MoveX != 1 {
		t.Error("request of a skipped entity must be left alone")
	}
}
