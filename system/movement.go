package system

import (
	"time"

	"github.com/tabbylab/whisker/constant"
	"github.com/tabbylab/whisker/engine"
)

// MovementSystem advances transforms from velocities. A pure kinematic
// step: no knowledge of gravity, jumping, or behavior. It runs after
// every system that writes velocity for the current tick; the transform
// it produces is what the next tick's grounding checks read.
type MovementSystem struct {
	world *engine.World
}

// NewMovementSystem creates the integration stage
func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Priority returns the system's pipeline position
func (s *MovementSystem) Priority() int {
	return constant.PriorityMovement
}

// Update integrates transform += velocity * dt with a ground clamp
func (s *MovementSystem) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	sec := dt.Seconds()

	c := &s.world.Components
	for _, e := range c.Velocity.All() {
		tf, ok := c.Transform.Get(e)
		if !ok {
			continue
		}
		vel, _ := c.Velocity.Get(e)

		tf.X += vel.VX * sec
		tf.Y += vel.VY * sec
		tf.Z += vel.VZ * sec

		// No sub-ground travel
		if tf.Y < 0 {
			tf.Y = 0
		}

		c.Transform.Set(e, tf)
	}
}
