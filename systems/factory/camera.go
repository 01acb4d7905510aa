package factory

import (
	"github.com/automoto/adventurer/archetypes"
	"github.com/automoto/adventurer/camera"
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the viewport and one parallax layer per
// Background<i> / Foreground<i> slot of m.
func CreateCamera(ecs *ecs.ECS, m *leveldata.Map) *donburi.Entry {
	cam := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(cam, &components.CameraData{
		Background: parallaxLayers(m.Parallax(cfg.Level.BackgroundPrefix, cfg.Level.ParallaxLayers)),
		Foreground: parallaxLayers(m.Parallax(cfg.Level.ForegroundPrefix, cfg.Level.ParallaxLayers)),
	})
	return cam
}

func parallaxLayers(factors []leveldata.Factor) []camera.Parallax {
	out := make([]camera.Parallax, len(factors))
	for i, f := range factors {
		out[i] = camera.Parallax{Factor: math.NewVec2(f.X, f.Y)}
	}
	return out
}
