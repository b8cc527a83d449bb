package component

// VelocityComponent is the rate of change of a transform, in world units
// per second. Control and impulse systems write it; the movement system
// consumes it.
type VelocityComponent struct {
	VX, VY, VZ float64
}
