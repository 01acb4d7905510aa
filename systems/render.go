package systems

import (
	"github.com/automoto/adventurer/assets"
	"github.com/automoto/adventurer/camera"
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	playerTextures *assets.TextureSet
)

// Off-screen entities are skipped. The padding keeps sprites from popping
// at the edges.
const cullPadding = 64.0

// PlayerTextures returns the player's texture set, loading it on first use.
func PlayerTextures() *assets.TextureSet {
	if playerTextures == nil {
		playerTextures = assets.MustLoadTextureSet(cfg.PlayerManifest)
	}
	return playerTextures
}

func getViewport(e *ecs.ECS) (*camera.Viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return &components.Camera.Get(cameraEntry).Viewport, true
}

// visible reports whether the world rectangle x, y, w, h touches the screen.
func visible(v *camera.Viewport, screen *ebiten.Image, x, y, w, h float64) bool {
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	left, bottom := float64(v.Left), float64(v.Bottom)
	return x+w >= left-cullPadding && x <= left+sw+cullPadding &&
		y+h >= bottom-cullPadding && y <= bottom+sh+cullPadding
}

// drawStretched draws img so that it covers the world rectangle x, y, w, h.
func drawStretched(screen, img *ebiten.Image, v *camera.Viewport, x, y, w, h float64) {
	if img == nil || !visible(v, screen, x, y, w, h) {
		return
	}
	sx, sy := v.Project(x, y+h, float64(screen.Bounds().Dy()))

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(w/float64(img.Bounds().Dx()), h/float64(img.Bounds().Dy()))
	drawOp.GeoM.Translate(sx, sy)
	screen.DrawImage(img, drawOp)
}

// DrawObjects renders moving platforms, coins and doors.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := getViewport(ecs)
	if !ok {
		return
	}

	draw := func(img *ebiten.Image) func(*donburi.Entry) {
		return func(e *donburi.Entry) {
			o := components.Object.Get(e)
			drawStretched(screen, img, v, o.X, o.Y, o.W, o.H)
		}
	}

	tags.MovingPlatform.Each(ecs.World, draw(assets.GetObjectImage("moving_platform.png")))
	tags.Coin.Each(ecs.World, draw(assets.GetObjectImage("coin.png")))
	tags.Door.Each(ecs.World, draw(assets.GetObjectImage("door.png")))
}

// DrawPlayer renders the player's current texture centred on its hitbox
// horizontally, with the texture centre CenterOffsetY above the hitbox
// bottom.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := getViewport(ecs)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	o := components.Object.Get(playerEntry)
	state := components.Character.Get(playerEntry)
	img := PlayerTextures().Frame(state.Frame)
	if img == nil {
		return
	}

	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	left := o.X + o.W/2 - w/2
	bottom := o.Y + cfg.Player.CenterOffsetY - h/2
	drawStretched(screen, img, v, left, bottom, w, h)
}
