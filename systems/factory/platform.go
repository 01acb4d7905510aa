package factory

import (
	"github.com/automoto/adventurer/archetypes"
	"github.com/automoto/adventurer/components"
	"github.com/automoto/adventurer/platforms"
	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/automoto/adventurer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlatform(ecs *ecs.ECS, s leveldata.Sprite) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvSolid)
	addToSpace(ecs, platform, obj)
	components.Platform.SetValue(platform, platforms.Platform{
		Kind: platforms.Solid,
		Body: obj,
	})
	return platform
}

// CreatePassablePlatform starts solid, like every other platform. The gate
// releases it on the first tick if the player is below it.
func CreatePassablePlatform(ecs *ecs.ECS, s leveldata.Sprite) *donburi.Entry {
	platform := archetypes.PassablePlatform.Spawn(ecs)
	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvSolid, tags.ResolvPassable)
	addToSpace(ecs, platform, obj)
	components.Platform.SetValue(platform, platforms.Platform{
		Kind:   platforms.Passable,
		Active: true,
		Body:   obj,
	})
	return platform
}

// CreateMovingPlatform reads the change_x / change_y velocity and the
// optional boundary_left / boundary_right / boundary_top / boundary_bottom
// limits from the sprite's properties.
func CreateMovingPlatform(ecs *ecs.ECS, s leveldata.Sprite) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvSolid, tags.ResolvMoving)
	addToSpace(ecs, platform, obj)

	vx, _ := s.Float("change_x")
	vy, _ := s.Float("change_y")
	components.Platform.SetValue(platform, platforms.Platform{
		Kind: platforms.Moving,
		Boundary: platforms.Boundary{
			Left:   boundary(s, "boundary_left"),
			Right:  boundary(s, "boundary_right"),
			Top:    boundary(s, "boundary_top"),
			Bottom: boundary(s, "boundary_bottom"),
		},
		Velocity: math.NewVec2(vx, vy),
		Body:     obj,
	})
	return platform
}

func boundary(s leveldata.Sprite, key string) *float64 {
	v, ok := s.Float(key)
	if !ok {
		return nil
	}
	return &v
}

func CreateLadder(ecs *ecs.ECS, s leveldata.Sprite) *donburi.Entry {
	ladder := archetypes.Ladder.Spawn(ecs)
	addToSpace(ecs, ladder, resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvLadder))
	return ladder
}
