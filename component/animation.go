package component

// EarSide identifies which ear is wiggling
type EarSide int

const (
	EarNone EarSide = iota
	EarSideLeft
	EarSideRight
)

// AnimationComponent holds the derived, time-boxed flags the renderer
// reads. Expiry timestamps live in the behavior system's private timer
// table, not here, so the component stays a plain comparable value.
type AnimationComponent struct {
	Smiling      bool
	EarWiggle    EarSide
	TailFlicking bool
	Startled     bool
	SubtleWiggle bool
}
