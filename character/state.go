package character

import "github.com/yohamta/donburi/features/math"

// State is the player character record driven by the animation, attack and
// movement logic in this package.
type State struct {
	Facing   Facing
	Velocity math.Vec2

	// Set from the physics engine every tick.
	OnLadder bool
	Grounded bool

	Climbing       bool
	AnimationFrame int
	ClimbFrame     int
	JumpFrame      int

	Attack Attack

	// Frame is the texture selected on the last tick.
	Frame Frame
}

// NewState returns a character at rest facing right. The jump hold window
// starts closed so a held key does not launch the character on spawn.
func NewState(t Tuning) State {
	return State{
		Facing:    Right,
		JumpFrame: t.JumpHold,
		Frame:     Frame{Category: Idle, Facing: Right},
	}
}

// Sense refreshes the ground and ladder flags. A character standing on the
// ground is never climbing, even when it overlaps a ladder.
func (s *State) Sense(ground Ground, reach float64) {
	s.Grounded = ground.CanJump(reach)
	s.OnLadder = ground.IsOnLadder() && !s.Grounded
}
