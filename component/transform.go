package component

// TransformComponent holds an entity's position in world units.
// Y is height above ground and is the sole vertical simulation axis;
// the integrator keeps it non-negative.
type TransformComponent struct {
	X, Y, Z float64

	// Scale caches the depth-derived render scale so the renderer does
	// not recompute the projection every frame. Simulation never reads it.
	Scale float64
}
