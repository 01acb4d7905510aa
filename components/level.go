package components

import (
	"github.com/automoto/adventurer/session"
	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the map the world was built from.
type LevelData struct {
	Map *leveldata.Map
}

var Level = donburi.NewComponentType[LevelData]()

// Session carries the score and the pending map change.
var Session = donburi.NewComponentType[session.Session]()
