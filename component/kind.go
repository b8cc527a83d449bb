package component

// Kind is the closed set of entity kinds in the scene. The actor is the
// only simulated kind; the rest are static furniture.
type Kind int

const (
	KindUnknown Kind = iota
	KindCat
	KindCushion
	KindFoodBowl
	KindScratchingPost
	KindYarnBall
)

// String returns the kind name for status display
func (k Kind) String() string {
	switch k {
	case KindCat:
		return "cat"
	case KindCushion:
		return "cushion"
	case KindFoodBowl:
		return "foodBowl"
	case KindScratchingPost:
		return "scratchingPost"
	case KindYarnBall:
		return "yarnBall"
	default:
		return "unknown"
	}
}

// KindComponent tags an entity with its scene kind
type KindComponent struct {
	Kind Kind
}
