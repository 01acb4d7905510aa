// Package camera computes the visible window of the world.
package camera

import "github.com/automoto/adventurer/shared/gamemath"

// Settings describes the screen and the map the viewport moves over.
type Settings struct {
	ScreenWidth  float64
	ScreenHeight float64
	TopMargin    float64
	BottomMargin float64
	TileSize     float64
	MapWidth     float64
	MapHeight    float64
}

// Target is the part of the character the viewport follows.
type Target struct {
	CenterX float64
	Top     float64
	Bottom  float64
}

// Viewport is the lower-left world corner of the screen. LeftOld and
// BottomOld hold the origin from the previous tick.
type Viewport struct {
	Left, Bottom       int
	LeftOld, BottomOld int
}

// Scroll recentres the viewport on t and returns how far it moved.
//
// Horizontally the viewport always centres on the character. Vertically it
// only moves once the character leaves the band between the bottom margin
// and the top margin. The origin is clamped to the map, keeping one tile of
// margin on the left and right, and snapped to whole pixels.
func (v *Viewport) Scroll(t Target, s Settings) (dx, dy int) {
	left := t.CenterX - s.ScreenWidth/2

	bottom := float64(v.Bottom)
	if limit := bottom + s.ScreenHeight - s.TopMargin; t.Top > limit {
		bottom += t.Top - limit
	}
	if limit := bottom + s.BottomMargin; t.Bottom < limit {
		bottom -= limit - t.Bottom
	}

	left = gamemath.Clamp(left, s.TileSize, s.MapWidth-s.ScreenWidth-s.TileSize)
	bottom = gamemath.Clamp(bottom, 0, s.MapHeight-s.ScreenHeight)

	v.Left = int(left)
	v.Bottom = int(bottom)

	dx = v.Left - v.LeftOld
	dy = v.Bottom - v.BottomOld
	v.LeftOld = v.Left
	v.BottomOld = v.Bottom
	return dx, dy
}

// Project converts a world point to screen pixels, flipping y so the
// screen's origin is its top-left corner.
func (v *Viewport) Project(x, y, screenHeight float64) (float64, float64) {
	return x - float64(v.Left), screenHeight - (y - float64(v.Bottom))
}
