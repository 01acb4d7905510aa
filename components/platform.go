package components

import (
	"github.com/automoto/adventurer/platforms"
	"github.com/yohamta/donburi"
)

var Platform = donburi.NewComponentType[platforms.Platform]()
