package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/fonts"
	"github.com/automoto/adventurer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the score and map name in the top-left corner, plus a
// line of player state while debugging.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sess := getSession(ecs)
	if sess == nil {
		return
	}

	face := fonts.HUD.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + lineHeight

	drawShadowed(screen, fmt.Sprintf("Score: %d", sess.Score), face, x, y)
	y += lineHeight
	drawShadowed(screen, sess.Map, face, x, y)

	if !GetOrCreateSettings(ecs).Debug {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	o := components.Object.Get(playerEntry)
	state := components.Character.Get(playerEntry)

	y += lineHeight
	drawShadowed(screen, fmt.Sprintf("(x, y) = (%.0f, %.0f)  attack %s stage %d frame %d  grounded %t",
		o.X, o.Y, state.Attack.Phase(), state.Attack.Stage, state.Attack.FrameCounter, state.Grounded),
		fonts.Debug.Get(), x, y)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowCol)
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
}

// DrawFade covers the screen with the fade colour at the current alpha.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Alpha <= 0 {
		return
	}

	c := cfg.Fade.Color
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{
		R: uint8(float32(c.R) * fade.Alpha),
		G: uint8(float32(c.G) * fade.Alpha),
		B: uint8(float32(c.B) * fade.Alpha),
		A: uint8(float32(c.A) * fade.Alpha),
	}, false)
}
