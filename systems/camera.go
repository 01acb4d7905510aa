package systems

import (
	"github.com/automoto/adventurer/camera"
	"github.com/automoto/adventurer/components"
	"github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera scrolls the viewport after the player and shifts the
// parallax layers by the same movement.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return
	}

	dx, dy := cam.Viewport.Scroll(camera.Target{
		CenterX: body.X + body.W/2,
		Top:     body.Y + body.H,
		Bottom:  body.Y,
	}, viewportSettings(level.Map.Width, level.Map.Height))

	for i := range cam.Background {
		cam.Background[i].Follow(dx, dy)
	}
	for i := range cam.Foreground {
		cam.Foreground[i].Follow(dx, dy)
	}
}

func viewportSettings(mapWidth, mapHeight float64) camera.Settings {
	return camera.Settings{
		ScreenWidth:  float64(config.C.Width),
		ScreenHeight: float64(config.C.Height),
		TopMargin:    config.Camera.TopMargin,
		BottomMargin: config.Camera.BottomMargin,
		TileSize:     config.Level.TileSize,
		MapWidth:     mapWidth,
		MapHeight:    mapHeight,
	}
}

// SnapCamera moves the viewport straight onto the player without shifting
// the parallax layers, for the first frame of a new world.
func SnapCamera(e *ecs.ECS) {
	UpdateCamera(e)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)
	for i := range cam.Background {
		cam.Background[i].Offset = math.Vec2{}
	}
	for i := range cam.Foreground {
		cam.Foreground[i].Offset = math.Vec2{}
	}
}
