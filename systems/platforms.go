package systems

import (
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/physics"
	"github.com/automoto/adventurer/platforms"
	"github.com/automoto/adventurer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePassable solidifies passable platforms the player is standing above
// and releases the ones it has dropped below.
func UpdatePassable(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	bottom := components.Object.Get(playerEntry).Y

	tags.PassablePlatform.Each(e.World, func(entry *donburi.Entry) {
		platforms.UpdatePassable(components.Platform.Get(entry), bottom, cfg.Level.PassThreshold, space)
	})
}

// UpdateMovingPlatforms moves every moving platform and turns it around at
// its boundaries. The player is carried along while riding a platform and
// pushed clear when a platform moves into it. Walls stop both.
func UpdateMovingPlatforms(e *ecs.ECS) {
	var player *physics.Engine
	if playerEntry, ok := tags.Player.First(e.World); ok {
		player = components.Physics.Get(playerEntry)
	}

	tags.MovingPlatform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		if player == nil {
			platforms.Move(p)
			platforms.Reflect(p)
			return
		}

		if p.Supports(physics.Bounds(player.Body)) {
			player.Shift(p.Velocity.X, p.Velocity.Y, p.Body)
		}
		platforms.Move(p)
		if dx, dy, ok := platforms.Push(p, physics.Bounds(player.Body)); ok {
			player.Shift(dx, dy, p.Body)
		}
		platforms.Reflect(p)
	})
}
