package system

import (
	"time"

	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/constant"
	"github.com/tabbylab/whisker/core"
	"github.com/tabbylab/whisker/engine"
)

// behaviorTimers is the per-entity timer bookkeeping for the behavior
// system. Kept in a side table owned by the system, never on the
// components, so components stay plain comparable values and separate
// worlds stay independently testable. A zero time.Time means disarmed.
type behaviorTimers struct {
	// stateDeadline drives the current state's auto-transition: alert
	// decay, prep -> pounce, pounce -> recover, recover -> idle. States
	// are exclusive so one deadline suffices; forcing sleep clears it.
	stateDeadline time.Time

	smileDeadline   time.Time
	earDeadline     time.Time
	tailDeadline    time.Time
	startleDeadline time.Time

	// wiggleClearPending implements the one-frame subtleWiggle latch:
	// set at the end of the tick that observed the intent, applied at
	// the start of the next tick
	wiggleClearPending bool
}

// BehaviorSystem owns the actor's discrete behavior state and the
// time-boxed animation flags. Transitions are evaluated in a fixed
// priority order each tick; every edge-triggered intent it processes is
// forced back to false at the end of the pass.
type BehaviorSystem struct {
	world  *engine.World
	clock  engine.Clock
	timers map[core.Entity]*behaviorTimers
}

// NewBehaviorSystem creates the behavior stage with the given time source
func NewBehaviorSystem(world *engine.World, clock engine.Clock) *BehaviorSystem {
	return &BehaviorSystem{
		world:  world,
		clock:  clock,
		timers: make(map[core.Entity]*behaviorTimers),
	}
}

// Priority returns the system's pipeline position
func (s *BehaviorSystem) Priority() int {
	return constant.PriorityBehavior
}

// Update advances behavior states and animation flags for every actor
func (s *BehaviorSystem) Update(dt time.Duration) {
	now := s.clock.Now()
	c := &s.world.Components

	for _, e := range c.Behavior.All() {
		intent, ok := c.Intent.Get(e)
		if !ok {
			continue
		}
		behavior, _ := c.Behavior.Get(e)
		anim, _ := c.Animation.Get(e)

		tm := s.timers[e]
		if tm == nil {
			tm = &behaviorTimers{}
			s.timers[e] = tm
		}

		// Phase one of the wiggle latch: the clear scheduled at the end
		// of the previous tick lands before this tick's intents are read
		if tm.wiggleClearPending {
			anim.SubtleWiggle = false
			tm.wiggleClearPending = false
		}

		s.stepState(&behavior, &intent, tm, now)
		s.applyAnimationIntents(&anim, &intent, tm, now)
		s.expireAnimations(&anim, tm, now)

		// Edge-triggered intents never survive the pass that read them.
		// Sleeping is level-triggered and stays; happyJump belongs to
		// the jump system.
		intent.Alert = false
		intent.PouncePrep = false
		intent.NoseBoop = false
		intent.EarLeft = false
		intent.EarRight = false
		intent.TailFlick = false
		intent.CheekPet = false
		intent.Startled = false
		intent.SubtleWiggle = false

		c.Behavior.Set(e, behavior)
		c.Animation.Set(e, anim)
		c.Intent.Set(e, intent)
	}
}

// stepState evaluates the transition rules in priority order. Each rule
// sees the state left by the rules above it, so an alert and a
// pounce-prep intent arriving together reach pouncePrep within one tick.
func (s *BehaviorSystem) stepState(b *component.BehaviorComponent, in *component.IntentComponent, tm *behaviorTimers, now time.Time) {
	// Sleep overrides everything and discards in-flight state timers
	if in.Sleeping && b.State != component.BehaviorSleeping {
		b.State = component.BehaviorSleeping
		tm.stateDeadline = time.Time{}
	}
	if !in.Sleeping && b.State == component.BehaviorSleeping {
		b.State = component.BehaviorIdle
		tm.stateDeadline = time.Time{}
	}

	if in.Alert && (b.State == component.BehaviorIdle || b.State == component.BehaviorRecover) {
		b.State = component.BehaviorAlert
		tm.stateDeadline = now.Add(constant.AlertDecayDuration)
	}

	if in.PouncePrep && (b.State == component.BehaviorAlert || b.State == component.BehaviorIdle) {
		b.State = component.BehaviorPouncePrep
		tm.stateDeadline = now.Add(constant.PouncePrepDuration)
	}

	if tm.stateDeadline.IsZero() || now.Before(tm.stateDeadline) {
		return
	}

	switch b.State {
	case component.BehaviorAlert:
		// Alert decays back to idle when no pounce prep arrived in time
		b.State = component.BehaviorIdle
		tm.stateDeadline = time.Time{}
	case component.BehaviorPouncePrep:
		b.State = component.BehaviorPouncing
		tm.stateDeadline = now.Add(constant.PounceDuration)
	case component.BehaviorPouncing:
		b.State = component.BehaviorRecover
		tm.stateDeadline = now.Add(constant.RecoverDuration)
	case component.BehaviorRecover:
		b.State = component.BehaviorIdle
		tm.stateDeadline = time.Time{}
	default:
		// Stale deadline for a state that does not use one
		tm.stateDeadline = time.Time{}
	}
}

// applyAnimationIntents arms the time-boxed animation flags
func (s *BehaviorSystem) applyAnimationIntents(anim *component.AnimationComponent, in *component.IntentComponent, tm *behaviorTimers, now time.Time) {
	if in.NoseBoop || in.CheekPet {
		anim.Smiling = true
		tm.smileDeadline = now.Add(constant.SmileDuration)
	}
	if in.EarLeft {
		anim.EarWiggle = component.EarSideLeft
		tm.earDeadline = now.Add(constant.EarWiggleDuration)
	}
	if in.EarRight {
		anim.EarWiggle = component.EarSideRight
		tm.earDeadline = now.Add(constant.EarWiggleDuration)
	}
	if in.TailFlick {
		anim.TailFlicking = true
		tm.tailDeadline = now.Add(constant.TailFlickDuration)
	}
	if in.Startled {
		// Always refresh: re-triggering extends the window from now
		anim.Startled = true
		tm.startleDeadline = now.Add(constant.StartleDuration)
	}
	if in.SubtleWiggle {
		// One-frame latch, cleared next tick rather than by timer
		anim.SubtleWiggle = true
		tm.wiggleClearPending = true
	}
}

// expireAnimations clears every flag whose window has closed and disarms
// its timer
func (s *BehaviorSystem) expireAnimations(anim *component.AnimationComponent, tm *behaviorTimers, now time.Time) {
	if !tm.smileDeadline.IsZero() && !now.Before(tm.smileDeadline) {
		anim.Smiling = false
		tm.smileDeadline = time.Time{}
	}
	if !tm.earDeadline.IsZero() && !now.Before(tm.earDeadline) {
		anim.EarWiggle = component.EarNone
		tm.earDeadline = time.Time{}
	}
	if !tm.tailDeadline.IsZero() && !now.Before(tm.tailDeadline) {
		anim.TailFlicking = false
		tm.tailDeadline = time.Time{}
	}
	if !tm.startleDeadline.IsZero() && !now.Before(tm.startleDeadline) {
		anim.Startled = false
		tm.startleDeadline = time.Time{}
	}

	// A startled flag with no live timer has no way to expire; heal it
	// rather than latch forever
	if anim.Startled && tm.startleDeadline.IsZero() {
		anim.Startled = false
	}
}
