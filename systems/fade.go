package systems

import (
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartFade begins the fade-in shown after the world is built.
func StartFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Fade))
	}
	components.Fade.SetValue(entry, components.FadeData{
		Tween: gween.New(1, 0, cfg.Fade.Duration, ease.OutQuad),
		Alpha: 1,
	})
}

// UpdateFade advances the fade by one tick.
func UpdateFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Tween == nil || fade.Done {
		return
	}
	fade.Alpha, fade.Done = fade.Tween.Update(1 / float32(ebiten.TPS()))
	if fade.Done {
		fade.Alpha = 0
	}
}
