package archetypes

import (
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	PassablePlatform = newArchetype(
		tags.Platform,
		tags.PassablePlatform,
		components.Object,
		components.Platform,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		tags.MovingPlatform,
		components.Object,
		components.Platform,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Character,
		components.Physics,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Object,
		components.Coin,
	)
	Door = newArchetype(
		tags.Door,
		components.Object,
		components.Door,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
		components.Audio,
		components.Settings,
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
