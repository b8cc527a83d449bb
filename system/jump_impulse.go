package system

import (
	"math"
	"time"

	"github.com/tabbylab/whisker/component"
	"github.com/tabbylab/whisker/constant"
	"github.com/tabbylab/whisker/engine"
)

// JumpSystem turns happyJump intents into vertical velocity impulses
// with platformer semantics: one ground jump plus one air jump per
// jump cycle, where a cycle ends on a confirmed landing. It also owns
// the rest of the vertical dynamics between jumps (gravity while
// airborne, absorption of downward velocity on ground contact), keeping
// the movement integrator a pure kinematic step.
type JumpSystem struct {
	world *engine.World
}

// NewJumpSystem creates the jump-impulse stage
func NewJumpSystem(world *engine.World) *JumpSystem {
	return &JumpSystem{world: world}
}

// Priority returns the system's pipeline position
func (s *JumpSystem) Priority() int {
	return constant.PriorityJump
}

// Update reconciles jump state, applies authorized impulses, and
// consumes the happyJump intent unconditionally
func (s *JumpSystem) Update(dt time.Duration) {
	c := &s.world.Components

	for _, e := range c.Intent.All() {
		tf, ok := c.Transform.Get(e)
		if !ok {
			continue
		}
		vel, ok := c.Velocity.Get(e)
		if !ok {
			continue
		}
		intent, _ := c.Intent.Get(e)

		onGround := tf.Y <= constant.GroundEpsilon

		// Reconcile before any intent handling. The position test marks
		// the entity grounded; the velocity check confirms an actual
		// landing (resting, not passing through ground level) and
		// restores the double-jump budget.
		js, hasJS := c.JumpState.Get(e)
		if hasJS {
			js.IsGrounded = onGround
			if onGround && math.Abs(vel.VY) < constant.LandingSpeedMax {
				js.HasDoubleJumped = false
			}
			c.JumpState.Set(e, js)
		}

		// Gravity applies before impulse handling so a double jump's snap
		// is the last write to vertical velocity this tick
		if !onGround {
			vel.VY -= constant.Gravity * dt.Seconds()
		}

		if intent.HappyJump {
			target := constant.JumpVelocityHappy
			if intent.JumpType == component.JumpPowerful {
				target = constant.JumpVelocityPowerful
			}

			if !hasJS {
				// First jump attempt creates the jump state lazily
				js = component.JumpStateComponent{IsGrounded: onGround}
				hasJS = true
			}

			switch {
			case onGround:
				// Ground jump. Blend into existing vertical motion to
				// avoid a visible pop when re-triggered while moving;
				// snap when starting from rest.
				if math.Abs(vel.VY) > constant.MinBlendSpeed {
					vel.VY = vel.VY*constant.JumpBlendRetain + target*constant.JumpBlendTarget
				} else {
					vel.VY = target
				}
				js.IsGrounded = false

			case !js.HasDoubleJumped:
				// Double jump always snaps to the full target so the
				// air-jump height is consistent regardless of fall speed
				vel.VY = target
				js.HasDoubleJumped = true

			default:
				// Third jump while airborne: the designed no-op branch
			}

			c.JumpState.Set(e, js)

			// Edge-triggered: consumed whether or not a jump was authorized
			intent.HappyJump = false
			c.Intent.Set(e, intent)
		}

		// Ground contact absorbs what is left of a fall. This runs after
		// intent handling so a ground jump re-triggered on the landing
		// tick still blends the pre-landing velocity.
		if onGround && vel.VY < 0 {
			vel.VY = 0
		}

		c.Velocity.Set(e, vel)
	}
}
