package component

// RunControlComponent is a one-shot lateral movement request in [-1, 1]
// per axis. The run-control system zeroes MoveX/MoveZ after applying it
// (Boost is preserved), so held movement requires the input layer to
// re-issue the request every tick.
type RunControlComponent struct {
	MoveX float64
	MoveZ float64
	Boost bool
}
