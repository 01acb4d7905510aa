package config

import "github.com/automoto/adventurer/character"

// Ticks each texture of a category stays on screen. Idle plays slower than
// everything else.
const (
	AnimationDivisor = 4
	IdleDivisor      = 5
)

// AnimationDivisors maps every category to its divisor.
var AnimationDivisors = map[character.Category]int{
	character.Idle:      IdleDivisor,
	character.Walk:      AnimationDivisor,
	character.Jump:      AnimationDivisor,
	character.Fall:      AnimationDivisor,
	character.Climb:     AnimationDivisor,
	character.AirAttack: AnimationDivisor,
	character.Attack1:   AnimationDivisor,
	character.Attack2:   AnimationDivisor,
	character.Attack3:   AnimationDivisor,
}

// PlayerManifest is the embedded manifest listing the player textures.
const PlayerManifest = "images/player/manifest.yaml"

// Tuning returns the movement constants in the form the character
// package consumes.
func Tuning() character.Tuning {
	return character.Tuning{
		MaxSpeed:     Player.MaxSpeed,
		Acceleration: Player.Acceleration,
		JumpSpeed:    Player.JumpSpeed,
		FallSpeed:    Player.FallSpeed,
		ClimbSpeed:   Player.ClimbSpeed,
		JumpMargin:   Player.JumpMargin,
		JumpHold:     Player.JumpHold,
	}
}
