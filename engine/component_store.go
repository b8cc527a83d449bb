package engine

import (
	"github.com/tabbylab/whisker/component"
)

// ComponentStore aggregates the typed stores for every component in the
// simulation. Systems hold the world and reach stores through here;
// pointers stay valid for the world's lifetime.
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Velocity  *Store[component.VelocityComponent]
	Behavior  *Store[component.BehaviorComponent]
	Intent    *Store[component.IntentComponent]
	RunCtl    *Store[component.RunControlComponent]
	JumpState *Store[component.JumpStateComponent]
	Animation *Store[component.AnimationComponent]
	Kind      *Store[component.KindComponent]
}

// newComponentStore creates all typed stores; called once per world
func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Velocity:  NewStore[component.VelocityComponent](),
		Behavior:  NewStore[component.BehaviorComponent](),
		Intent:    NewStore[component.IntentComponent](),
		RunCtl:    NewStore[component.RunControlComponent](),
		JumpState: NewStore[component.JumpStateComponent](),
		Animation: NewStore[component.AnimationComponent](),
		Kind:      NewStore[component.KindComponent](),
	}

	all := []AnyStore{
		cs.Transform,
		cs.Velocity,
		cs.Behavior,
		cs.Intent,
		cs.RunCtl,
		cs.JumpState,
		cs.Animation,
		cs.Kind,
	}

	return cs, all
}
