package component

// JumpStateComponent tracks the jump cycle between two consecutive
// ground contacts. Created lazily on the first jump attempt.
type JumpStateComponent struct {
	HasDoubleJumped bool
	IsGrounded      bool
}
