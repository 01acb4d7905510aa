package systems

import (
	"github.com/automoto/adventurer/assets"
	"github.com/automoto/adventurer/camera"
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	levelDrawOp = &ebiten.DrawImageOptions{}

	// Background<i> and Foreground<i> names, drawn by drawParallax instead
	// of DrawLevel.
	parallaxNames = parallaxLayerNames()
)

// DrawBackground fills the sky and draws the background parallax layers,
// farthest first.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Level.DefaultBackground)
	drawParallax(ecs, screen, cfg.Level.BackgroundPrefix, func(c *components.CameraData) []camera.Parallax {
		return c.Background
	})
}

// DrawForeground draws the foreground parallax layers over the world.
func DrawForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawParallax(ecs, screen, cfg.Level.ForegroundPrefix, func(c *components.CameraData) []camera.Parallax {
		return c.Foreground
	})
}

// DrawLevel draws the tile layers that are not parallax layers in the
// order the map declares them.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	level, cam, ok := levelAndCamera(ecs)
	if !ok {
		return
	}
	imgs, ok := assets.RenderedLevel(level.Map.Name)
	if !ok {
		return
	}

	for _, name := range imgs.Order {
		if parallaxNames[name] {
			continue
		}
		drawLayer(screen, imgs.Layers[name], &cam.Viewport, level.Map.Height, 0, 0)
	}
}

func drawParallax(ecs *ecs.ECS, screen *ebiten.Image, prefix string, layers func(*components.CameraData) []camera.Parallax) {
	level, cam, ok := levelAndCamera(ecs)
	if !ok {
		return
	}
	imgs, ok := assets.RenderedLevel(level.Map.Name)
	if !ok {
		return
	}

	list := layers(cam)
	names := leveldata.LayerNames(prefix, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		layer, ok := imgs.Layers[names[i]]
		if !ok {
			continue
		}
		drawLayer(screen, layer, &cam.Viewport, level.Map.Height, list[i].Offset.X, list[i].Offset.Y)
	}
}

// drawLayer draws a whole-map layer image shifted by the world offset
// dx, dy.
func drawLayer(screen *ebiten.Image, layer assets.LayerImage, v *camera.Viewport, mapHeight, dx, dy float64) {
	if layer.Image == nil {
		return
	}
	sx, sy := v.Project(dx, mapHeight+dy, float64(screen.Bounds().Dy()))

	levelDrawOp.GeoM.Reset()
	levelDrawOp.ColorScale.Reset()
	levelDrawOp.GeoM.Translate(sx, sy)
	levelDrawOp.ColorScale.ScaleAlpha(layer.Opacity)
	screen.DrawImage(layer.Image, levelDrawOp)
}

func levelAndCamera(ecs *ecs.ECS) (*components.LevelData, *components.CameraData, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return nil, nil, false
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return level, components.Camera.Get(cameraEntry), true
}

func parallaxLayerNames() map[string]bool {
	names := make(map[string]bool, 2*cfg.Level.ParallaxLayers)
	for _, prefix := range []string{cfg.Level.BackgroundPrefix, cfg.Level.ForegroundPrefix} {
		for _, name := range leveldata.LayerNames(prefix, cfg.Level.ParallaxLayers) {
			names[name] = true
		}
	}
	return names
}
