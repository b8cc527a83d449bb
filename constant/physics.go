package constant

// Run control tuning (world units per second)
const (
	RunBaseSpeed  = 4.0
	RunBoostSpeed = 7.0
	DepthRate     = 2.5

	// DepthDamping multiplies depth velocity each tick with no depth
	// input; DepthSnapEpsilon is the magnitude below which it snaps to
	// zero outright
	DepthDamping     = 0.85
	DepthSnapEpsilon = 0.05
)

// Vertical dynamics
const (
	Gravity = 12.0 // world units per second squared, applied while airborne

	// JumpVelocityHappy is the happy-jump impulse target; a powerful jump
	// targets exactly double
	JumpVelocityHappy    = 4.0
	JumpVelocityPowerful = 2 * JumpVelocityHappy

	// GroundEpsilon is the height at or below which an entity counts as
	// on the ground
	GroundEpsilon = 0.01

	// LandingSpeedMax is the vertical speed below which ground contact
	// counts as a landing rather than passing through ground level
	LandingSpeedMax = 1.0

	// Ground jumps blend into existing vertical velocity to avoid a
	// visible pop when re-triggered mid-motion; below MinBlendSpeed the
	// target is snapped directly
	JumpBlendRetain = 0.6
	JumpBlendTarget = 0.4
	MinBlendSpeed   = 0.5
)
