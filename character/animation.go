package character

import "math"

// climbMotion is the speed above which climbing advances the climb cycle.
const climbMotion = 1

// Animate advances the character's animation by one tick and returns the
// selected frame. Branches are tried in priority order and the first match
// wins: climbing, attacking, jumping, falling, idle, walking.
//
// A ground combo freezes horizontal velocity while it plays.
func Animate(s *State, clips *Clips) Frame {
	s.AnimationFrame++
	s.Facing = s.Facing.Turn(s.Velocity.X)

	s.Climbing = s.OnLadder
	if s.Climbing {
		if math.Abs(s.Velocity.X) > climbMotion || math.Abs(s.Velocity.Y) > climbMotion {
			s.ClimbFrame++
		}
		return s.show(Climb, clips[Climb].Index(s.ClimbFrame))
	}

	if s.Attack.Active {
		airborne := !s.Grounded
		category, index, outcome := s.Attack.Update(airborne, clips)
		switch outcome {
		case AttackPlaying:
			if !airborne {
				s.Velocity.X = 0
			}
			return s.show(category, index)
		case AttackCancelled:
			return s.Frame
		}
	}

	switch {
	case s.Velocity.Y > 0:
		return s.show(Jump, clips[Jump].Index(s.AnimationFrame))
	case s.Velocity.Y < 0:
		return s.show(Fall, clips[Fall].Index(s.AnimationFrame))
	case s.Velocity.X == 0:
		return s.show(Idle, clips[Idle].Index(s.AnimationFrame))
	}
	return s.show(Walk, clips[Walk].Index(s.AnimationFrame))
}

func (s *State) show(category Category, index int) Frame {
	s.Frame = Frame{Category: category, Index: index, Facing: s.Facing}
	return s.Frame
}
