package component

// BehaviorState is the discrete behavior of the actor
type BehaviorState int

const (
	BehaviorIdle BehaviorState = iota
	BehaviorAlert
	BehaviorPouncePrep
	BehaviorPouncing
	BehaviorRecover
	BehaviorSleeping
)

// String returns the behavior name for status display and logs
func (s BehaviorState) String() string {
	switch s {
	case BehaviorIdle:
		return "idle"
	case BehaviorAlert:
		return "alert"
	case BehaviorPouncePrep:
		return "pouncePrep"
	case BehaviorPouncing:
		return "pouncing"
	case BehaviorRecover:
		return "recover"
	case BehaviorSleeping:
		return "sleeping"
	default:
		return "unknown"
	}
}

// PounceActive reports whether the state is part of the pounce sequence,
// during which run control always applies the boosted speed and depth
// momentum is preserved
func (s BehaviorState) PounceActive() bool {
	return s == BehaviorPouncePrep || s == BehaviorPouncing || s == BehaviorRecover
}

// BehaviorComponent carries the actor's current discrete state.
// Exactly one entity class (the actor) has this component.
type BehaviorComponent struct {
	State BehaviorState
}
