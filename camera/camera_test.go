package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

var settings = Settings{
	ScreenWidth:  1280,
	ScreenHeight: 720,
	TopMargin:    100,
	BottomMargin: 150,
	TileSize:     64,
	MapWidth:     64 * 60,
	MapHeight:    64 * 30,
}

func TestScrollCentresHorizontally(t *testing.T) {
	var v Viewport

	dx, _ := v.Scroll(Target{CenterX: 2000, Top: 400, Bottom: 300}, settings)
	assert.Equal(t, 1360, v.Left)
	assert.Equal(t, 1360, dx)

	dx, _ = v.Scroll(Target{CenterX: 2010.7, Top: 400, Bottom: 300}, settings)
	assert.Equal(t, 1370, v.Left, "truncated to whole pixels")
	assert.Equal(t, 10, dx)
	assert.Equal(t, 1370, v.LeftOld)
}

func TestScrollClampsHorizontally(t *testing.T) {
	var v Viewport

	v.Scroll(Target{CenterX: 0, Top: 400, Bottom: 300}, settings)
	assert.Equal(t, 64, v.Left)

	v.Scroll(Target{CenterX: 1e6, Top: 400, Bottom: 300}, settings)
	assert.Equal(t, 64*60-1280-64, v.Left)
}

func TestScrollVerticalDeadZone(t *testing.T) {
	v := Viewport{Bottom: 500, BottomOld: 500}

	// inside the band
	_, dy := v.Scroll(Target{CenterX: 2000, Top: 1100, Bottom: 700}, settings)
	assert.Equal(t, 0, dy)
	assert.Equal(t, 500, v.Bottom)

	// above the top margin: 500+720-100 = 1120
	_, dy = v.Scroll(Target{CenterX: 2000, Top: 1150, Bottom: 1058}, settings)
	assert.Equal(t, 30, dy)
	assert.Equal(t, 530, v.Bottom)

	// below the bottom margin: 530+150 = 680
	_, dy = v.Scroll(Target{CenterX: 2000, Top: 752, Bottom: 660}, settings)
	assert.Equal(t, -20, dy)
	assert.Equal(t, 510, v.Bottom)
}

func TestScrollClampsVertically(t *testing.T) {
	var v Viewport

	v.Scroll(Target{CenterX: 2000, Top: -100, Bottom: -192}, settings)
	assert.Equal(t, 0, v.Bottom)

	v.Scroll(Target{CenterX: 2000, Top: 1e6, Bottom: 1e6 - 92}, settings)
	assert.Equal(t, 64*30-720, v.Bottom)
}

func TestNarrowMapPinsViewport(t *testing.T) {
	narrow := settings
	narrow.MapWidth = 640
	narrow.MapHeight = 320
	want := int(narrow.MapWidth - narrow.ScreenWidth - narrow.TileSize)

	var v Viewport
	for _, x := range []float64{-500, 0, 100, 320, 640, 5000} {
		v.Scroll(Target{CenterX: x, Top: 200, Bottom: 108}, narrow)
		assert.Equal(t, want, v.Left, "x=%v", x)
		assert.Equal(t, -400, v.Bottom)
	}
}

func TestProject(t *testing.T) {
	v := Viewport{Left: 100, Bottom: 50}
	x, y := v.Project(150, 60, 720)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 710.0, y)
}

func TestParallaxFollow(t *testing.T) {
	p := Parallax{Factor: math.Vec2{X: 0.5, Y: 1}}
	p.Follow(10, 10)
	p.Follow(-4, 6)

	assert.Equal(t, 3.0, p.Offset.X)
	assert.Equal(t, 0.0, p.Offset.Y)
}
