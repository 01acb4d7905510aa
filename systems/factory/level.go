package factory

import (
	"log"

	"github.com/automoto/adventurer/archetypes"
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/session"
	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, m *leveldata.Map) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Map: m})
	return level
}

// CreateSession creates the singleton that survives world rebuilds. The
// caller passes the values carried over from the previous world.
func CreateSession(ecs *ecs.ECS, sess session.Session, settings components.SettingsData, input components.InputData) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, sess)
	components.Settings.SetValue(entry, settings)
	components.Input.SetValue(entry, input)
	components.Audio.SetValue(entry, components.AudioData{PendingSFX: make([]cfg.SoundID, 0, 8)})
	return entry
}

// BuildLevel fills the world with everything m describes and puts the
// player at door doorID.
func BuildLevel(ecs *ecs.ECS, m *leveldata.Map, doorID int) {
	CreateLevel(ecs, m)
	CreateSpace(ecs, int(m.Width), int(m.Height), cfg.Physics.CellSize, cfg.Physics.CellSize)
	CreateCamera(ecs, m)

	for _, s := range m.Sprites(cfg.Level.PlatformLayer) {
		CreatePlatform(ecs, s)
	}
	for _, s := range m.Sprites(cfg.Level.PassableLayer) {
		CreatePassablePlatform(ecs, s)
	}
	for _, s := range m.Sprites(cfg.Level.MovingLayer) {
		CreateMovingPlatform(ecs, s)
	}
	for _, s := range m.Sprites(cfg.Level.LadderLayer) {
		CreateLadder(ecs, s)
	}
	for _, s := range m.Sprites(cfg.Level.CoinLayer) {
		CreateCoin(ecs, s)
	}
	for _, s := range m.Sprites(cfg.Level.DoorLayer) {
		CreateDoor(ecs, s)
	}

	x, bottom, ok := session.Spawn(m, cfg.Level.DoorLayer, doorID, cfg.Level.DoorSpawnOffset)
	if !ok {
		log.Printf("Warning: map %s has no door %d, spawning at the origin", m.Name, doorID)
	}
	CreatePlayer(ecs, x, bottom)
}
