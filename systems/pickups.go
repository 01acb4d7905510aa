package systems

import (
	"log"

	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/physics"
	"github.com/automoto/adventurer/session"
	"github.com/automoto/adventurer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins collects every coin the player overlaps.
func UpdateCoins(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sess := getSession(e)
	if sess == nil {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	body := components.Object.Get(playerEntry).Object

	for _, o := range physics.Overlapping(body, 0, 0, tags.ResolvCoin) {
		coinEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !coinEntry.Valid() {
			continue
		}

		coin := components.Coin.Get(coinEntry)
		if coin.HasPoints {
			sess.Collect(coin.Points)
		} else {
			log.Printf("Warning: collected a coin without a Points property at (%.0f, %.0f)", o.X, o.Y)
		}

		space.Remove(o)
		e.World.Remove(coinEntry.Entity())
		PlaySFX(e, cfg.SoundCoin)
	}
}

// UpdateDoors walks through a linked door the player overlaps while Down
// is held.
func UpdateDoors(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	if !input.Controls.Down || input.DoorNeedsReset {
		return
	}
	sess := getSession(e)
	if sess == nil {
		return
	}
	body := components.Object.Get(playerEntry).Object

	for _, o := range physics.Overlapping(body, 0, 0, tags.ResolvDoor) {
		doorEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !doorEntry.Valid() {
			continue
		}
		link := components.Door.Get(doorEntry)
		if !link.Linked() {
			continue
		}
		if sess.Request(link.Transition()) {
			input.DoorNeedsReset = true
		}
		return
	}
}

// UpdateRespawn restarts the map when the player has fallen out of it.
func UpdateRespawn(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sess := getSession(e)
	if sess == nil {
		return
	}

	if session.FellOut(components.Object.Get(playerEntry).Y, cfg.Level.FallLimit) && sess.Restart() {
		PlaySFX(e, cfg.SoundGameOver)
	}
}

func getSession(e *ecs.ECS) *session.Session {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}
