package input

// Action discriminates the semantic requests the key layer can produce.
// The translation from keys to actions lives in the key table; turning
// an action into component writes lives in the Binder.
type Action int

const (
	ActionNone Action = iota

	// System
	ActionQuit

	// Locomotion (one-shot per keypress; terminals carry no key-up)
	ActionRunLeft
	ActionRunRight
	ActionRunLeftBoost
	ActionRunRightBoost
	ActionRunNear
	ActionRunFar

	// Jumps
	ActionJumpHappy
	ActionJumpPowerful

	// Behavior
	ActionSleepToggle
	ActionAlert
	ActionPouncePrep

	// Petting and reactions
	ActionNoseBoop
	ActionCheekPet
	ActionEarLeft
	ActionEarRight
	ActionTailFlick
	ActionStartle
	ActionSubtleWiggle
)
