package components

import (
	"github.com/automoto/adventurer/character"
	"github.com/automoto/adventurer/physics"
	"github.com/yohamta/donburi"
)

// Character holds the player's animation, attack and movement state.
var Character = donburi.NewComponentType[character.State]()

// Physics is the engine stepping the player's body through the space.
var Physics = donburi.NewComponentType[physics.Engine]()
