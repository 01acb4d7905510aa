package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	PassablePlatform = donburi.NewTag().SetName("PassablePlatform")
	MovingPlatform   = donburi.NewTag().SetName("MovingPlatform")
	Ladder           = donburi.NewTag().SetName("Ladder")
	Coin             = donburi.NewTag().SetName("Coin")
	Door             = donburi.NewTag().SetName("Door")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPassable = "passable"
	ResolvMoving   = "moving"
	ResolvLadder   = "ladder"
	ResolvPlayer   = "Player"
	ResolvCoin     = "coin"
	ResolvDoor     = "door"
)
