package character

import "github.com/automoto/adventurer/shared/gamemath"

// Ground is what the movement resolver needs to know from the physics engine.
type Ground interface {
	CanJump(margin float64) bool
	IsOnLadder() bool
}

// Controls is the latched directional input consumed once per tick.
type Controls struct {
	Left, Right, Up, Down bool

	// JumpNeedsReset is set when a jump starts and cleared when the jump
	// key is released, so holding the key cannot chain jumps.
	JumpNeedsReset bool
}

// Tuning holds the movement constants.
type Tuning struct {
	MaxSpeed     float64
	Acceleration float64
	JumpSpeed    float64
	FallSpeed    float64
	ClimbSpeed   float64
	JumpMargin   float64 // ground reach for starting a jump
	JumpHold     int     // ticks after a jump during which holding up keeps rising
}

// Resolve turns the held controls into velocity. It returns true on the tick
// a jump starts.
func Resolve(s *State, c *Controls, ground Ground, t Tuning) bool {
	jumped := false
	onLadder := ground.IsOnLadder()
	v := &s.Velocity

	switch {
	case c.Up && !c.Down:
		if onLadder {
			v.Y = t.ClimbSpeed
		} else if ground.CanJump(t.JumpMargin) && !c.JumpNeedsReset {
			v.Y = t.JumpSpeed
			c.JumpNeedsReset = true
			s.JumpFrame = 0
			jumped = true
		}
	case c.Down && !c.Up:
		if onLadder {
			v.Y = -t.ClimbSpeed
		}
	}

	// Holding the key early in a jump keeps the rise going.
	if !onLadder && s.JumpFrame < t.JumpHold && c.Up {
		v.Y = t.JumpSpeed
	}

	if v.Y < -t.FallSpeed {
		v.Y = -t.FallSpeed
	}
	s.JumpFrame++

	if onLadder && c.Up == c.Down {
		v.Y = 0
	}

	switch {
	case c.Right && !c.Left:
		v.X = gamemath.Accelerate(v.X, t.Acceleration, t.MaxSpeed)
	case c.Left && !c.Right:
		v.X = gamemath.Accelerate(v.X, -t.Acceleration, t.MaxSpeed)
	default:
		v.X = 0
	}

	if s.Attack.Locked() {
		v.X = 0
	}
	return jumped
}
