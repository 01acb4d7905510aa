package systems

import (
	"github.com/automoto/adventurer/character"
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/physics"
	"github.com/automoto/adventurer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer starts attacks on a fresh press and turns the held controls
// into velocity.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	state := components.Character.Get(playerEntry)
	engine := components.Physics.Get(playerEntry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionAttack).JustPressed {
		grounded := engine.CanJump(cfg.Physics.GroundReach)
		dx := state.Attack.Press(grounded, state.OnLadder, state.Facing, cfg.Player.AttackLunge)
		// The lunge is skipped rather than pushing the body into a wall.
		if dx != 0 && len(physics.Overlapping(engine.Body, dx, 0, tags.ResolvSolid)) == 0 {
			engine.Body.X += dx
			engine.Body.Update()
		}
	}

	state.Sense(engine, cfg.Physics.GroundReach)
	if character.Resolve(state, &input.Controls, engine, cfg.Tuning()) {
		PlaySFX(e, cfg.SoundJump)
	}
}

// UpdatePhysics steps the player's body and refreshes the ground flags for
// the systems that follow.
func UpdatePhysics(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	state := components.Character.Get(playerEntry)
	engine := components.Physics.Get(playerEntry)

	engine.Update(&state.Velocity)
	state.Sense(engine, cfg.Physics.GroundReach)
}

// UpdateAnimation picks the player's texture for this tick.
func UpdateAnimation(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	character.Animate(components.Character.Get(playerEntry), &PlayerTextures().Clips)
}
