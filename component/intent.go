package component

// JumpType selects the impulse magnitude of a happy jump
type JumpType int

const (
	JumpHappy JumpType = iota
	JumpPowerful // exactly double the happy impulse
)

// IntentComponent holds externally produced request flags, written onto
// the actor by the input layer before each tick.
//
// Sleeping is level-triggered: it holds until the producer changes it.
// Every other flag is edge-triggered: the system that processes it
// forces it back to false after one pass, so it never re-fires without
// a fresh external trigger.
type IntentComponent struct {
	Sleeping bool // level-triggered

	Alert        bool
	PouncePrep   bool
	NoseBoop     bool
	EarLeft      bool
	EarRight     bool
	TailFlick    bool
	CheekPet     bool
	Startled     bool
	SubtleWiggle bool

	HappyJump bool
	JumpType  JumpType
}
