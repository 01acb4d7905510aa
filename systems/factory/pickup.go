package factory

import (
	"github.com/automoto/adventurer/archetypes"
	"github.com/automoto/adventurer/components"
	"github.com/automoto/adventurer/session"
	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/automoto/adventurer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, s leveldata.Sprite) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	addToSpace(ecs, coin, resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvCoin))

	points, ok := session.CoinValue(s)
	components.Coin.SetValue(coin, components.CoinData{Points: points, HasPoints: ok})
	return coin
}

func CreateDoor(ecs *ecs.ECS, s leveldata.Sprite) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)
	addToSpace(ecs, door, resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvDoor))
	components.Door.SetValue(door, session.LinkOf(s))
	return door
}
