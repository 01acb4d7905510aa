package components

import (
	"github.com/automoto/adventurer/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Viewport camera.Viewport

	// One entry per Background<i> / Foreground<i> layer.
	Background []camera.Parallax
	Foreground []camera.Parallax
}

var Camera = donburi.NewComponentType[CameraData]()
