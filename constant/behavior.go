package constant

import "time"

// Behavior state durations. The pounce pipeline is strictly ordered
// prep -> pounce -> recover -> idle with no skips.
const (
	AlertDecayDuration = 250 * time.Millisecond
	PouncePrepDuration = 180 * time.Millisecond
	PounceDuration     = 360 * time.Millisecond
	RecoverDuration    = 220 * time.Millisecond
)

// Animation flag visibility windows
const (
	SmileDuration     = 750 * time.Millisecond
	EarWiggleDuration = 500 * time.Millisecond
	TailFlickDuration = 600 * time.Millisecond

	// StartleDuration is refreshed on every trigger: re-startling while
	// already startled extends the window from now, it never shortens it
	StartleDuration = 450 * time.Millisecond
)
