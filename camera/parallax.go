package camera

import "github.com/yohamta/donburi/features/math"

// Parallax tracks how far a background or foreground layer has drifted from
// the world. A factor of 1 moves with the world; 0 stays fixed to the screen.
type Parallax struct {
	Factor math.Vec2
	Offset math.Vec2
}

// Follow shifts the layer by the part of the viewport scroll it does not
// share with the world.
func (p *Parallax) Follow(dx, dy int) {
	p.Offset.X += float64(dx) * (1 - p.Factor.X)
	p.Offset.Y += float64(dy) * (1 - p.Factor.Y)
}
