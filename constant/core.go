package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the target simulation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the elapsed time applied in a single tick so the
	// simulation does not lurch after a stall (window unfocused, debugger)
	MaxFrameDelta = 32 * time.Millisecond

	// RenderInterval is the terminal redraw interval
	RenderInterval = 33 * time.Millisecond
)

// System Execution Priorities (lower runs first)
const (
	PriorityRunControl = 10
	PriorityJump       = 20
	PriorityMovement   = 30
	PriorityBehavior   = 40
)
