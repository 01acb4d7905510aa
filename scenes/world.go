package scenes

import (
	"log"
	"sync"

	"github.com/automoto/adventurer/assets"
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/session"
	"github.com/automoto/adventurer/systems"
	"github.com/automoto/adventurer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs      *ecs.ECS
	startMap string
	once     sync.Once
}

// NewPlatformerScene creates a scene that starts on startMap at door 0.
func NewPlatformerScene(startMap string) *PlatformerScene {
	return &PlatformerScene{startMap: startMap}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// Map changes queued during the tick are applied between ticks.
	ps.applyTransition()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	sess := session.New(ps.startMap)
	t, _ := sess.Take()
	ps.build(*sess, components.SettingsData{
		Muted:     systems.IsMuted(),
		SFXVolume: systems.GetSFXVolume(),
		Debug:     cfg.Debug.ShowHitboxes,
	}, components.InputData{}, t)
}

func (ps *PlatformerScene) applyTransition() {
	entry, ok := components.Session.First(ps.ecs.World)
	if !ok {
		return
	}
	sess := components.Session.Get(entry)
	t, ok := sess.Take()
	if !ok {
		return
	}
	if !assets.HasMap(t.Map) {
		log.Printf("Warning: no map named %s, staying on %s", t.Map, sess.Map)
		return
	}

	settings := *components.Settings.Get(entry)
	input := *components.Input.Get(entry)
	ps.build(*sess, settings, input, t)
}

// build discards the current world and creates a fresh one for t. The
// session, settings and held input carry over.
func (ps *PlatformerScene) build(sess session.Session, settings components.SettingsData, input components.InputData, t session.Transition) {
	m := assets.MustLoadMap(t.Map)
	log.Printf("Building %s at door %d (%s)", t.Map, t.DoorID, t.Reason)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdatePassable)
	ecs.AddSystem(systems.UpdateMovingPlatforms)
	ecs.AddSystem(systems.UpdateRespawn)
	ecs.AddSystem(systems.UpdateCoins)
	ecs.AddSystem(systems.UpdateDoors)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateFade)
	// Runs last so every sound queued this tick plays, even on a tick
	// that ends in a map change.
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Background, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawObjects)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Foreground, systems.DrawForeground)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawFade)

	sess.Begin(t)
	// A Down still held from the door just used must be released first.
	input.DoorNeedsReset = input.Controls.Down
	factory.CreateSession(ecs, sess, settings, input)
	factory.BuildLevel(ecs, m, t.DoorID)

	systems.SnapCamera(ecs)
	systems.StartFade(ecs)

	ps.ecs = ecs
}
