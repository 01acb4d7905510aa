package systems

import (
	"image/color"

	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every body in the collision space. Passable
// platforms only show while they are solid.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := getViewport(ecs)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	screenHeight := float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		if !visible(v, screen, obj.X, obj.Y, obj.W, obj.H) {
			continue
		}

		// Determine color based on tags
		c := cfg.Debug.SolidColor
		switch {
		case obj.HasTags(tags.ResolvPassable):
			c = cfg.Debug.PassColor
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.Debug.PlayerColor
		case obj.HasTags(tags.ResolvCoin, tags.ResolvDoor, tags.ResolvLadder):
			c = cfg.Debug.TriggerColor
		}

		x, y := v.Project(obj.X, obj.Y+obj.H, screenHeight)
		strokeRect(screen, x, y, obj.W, obj.H, c)
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
