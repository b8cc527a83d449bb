package system

import (
	"math"
	"time"

	"github.com/tabbylab/whisker/constant"
	"github.com/tabbylab/whisker/engine"
)

// RunControlSystem converts one-shot lateral movement requests into
// horizontal/depth velocity for the actor. Vertical velocity is never
// touched here. Entities without a Behavior component are skipped: run
// control only applies to actors.
type RunControlSystem struct {
	world *engine.World
}

// NewRunControlSystem creates the run-control stage
func NewRunControlSystem(world *engine.World) *RunControlSystem {
	return &RunControlSystem{world: world}
}

// Priority returns the system's pipeline position
func (s *RunControlSystem) Priority() int {
	return constant.PriorityRunControl
}

// Update applies pending run requests and resets them to zero movement
// so held movement must be re-issued by the input layer every tick
func (s *RunControlSystem) Update(dt time.Duration) {
	c := &s.world.Components

	for _, e := range c.RunCtl.All() {
		behavior, ok := c.Behavior.Get(e)
		if !ok {
			continue
		}
		vel, ok := c.Velocity.Get(e)
		if !ok {
			continue
		}
		req, _ := c.RunCtl.Get(e)

		// Pounce assist: the pounce sequence always runs at boost speed
		speed := constant.RunBaseSpeed
		if req.Boost || behavior.State.PounceActive() {
			speed = constant.RunBoostSpeed
		}

		vel.VX = req.MoveX * speed

		if req.MoveZ != 0 {
			vel.VZ = req.MoveZ * constant.DepthRate
		} else if !behavior.State.PounceActive() {
			// Decay depth drift toward zero, but never cancel pounce momentum
			vel.VZ *= constant.DepthDamping
			if math.Abs(vel.VZ) < constant.DepthSnapEpsilon {
				vel.VZ = 0
			}
		}

		c.Velocity.Set(e, vel)

		// One-shot consumption; the boost flag is sticky
		req.MoveX = 0
		req.MoveZ = 0
		c.RunCtl.Set(e, req)
	}
}
