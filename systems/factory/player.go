package factory

import (
	"github.com/automoto/adventurer/archetypes"
	"github.com/automoto/adventurer/character"
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/physics"
	"github.com/automoto/adventurer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the player's hitbox with its bottom edge centred on
// centerX, bottom.
func CreatePlayer(ecs *ecs.ECS, centerX, bottom float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(centerX-w/2, bottom, w, h, tags.ResolvPlayer)
	addToSpace(ecs, player, obj)

	components.Character.SetValue(player, character.NewState(cfg.Tuning()))
	components.Physics.Set(player, physics.NewEngine(obj, cfg.Physics.Gravity))

	return player
}
