package components

import (
	"github.com/automoto/adventurer/session"
	"github.com/yohamta/donburi"
)

// CoinData is a collectible worth Points. HasPoints is false when the map
// left the value out.
type CoinData struct {
	Points    int
	HasPoints bool
}

var Coin = donburi.NewComponentType[CoinData]()

// Door is a door's id and where it leads.
var Door = donburi.NewComponentType[session.Link]()
