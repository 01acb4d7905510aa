package platforms

import (
	"github.com/automoto/adventurer/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Kind is the collision behaviour of a platform.
type Kind int

const (
	Solid Kind = iota
	Passable
	Moving
)

// Boundary holds optional thresholds for a moving platform. A nil field
// places no limit on that side.
type Boundary struct {
	Left, Right, Top, Bottom *float64
}

// Platform is a rectangle the character can stand on.
type Platform struct {
	Kind Kind

	// Active is whether a passable platform currently blocks the
	// character. The body is in the collision index exactly while Active.
	Active bool

	Boundary Boundary
	Velocity math.Vec2
	Body     *resolv.Object
}

func (p *Platform) Bounds() gamemath.Rect {
	return gamemath.Rect{X: p.Body.X, Y: p.Body.Y, W: p.Body.W, H: p.Body.H}
}

func (p *Platform) Left() float64   { return p.Body.X }
func (p *Platform) Right() float64  { return p.Body.X + p.Body.W }
func (p *Platform) Bottom() float64 { return p.Body.Y }
func (p *Platform) Top() float64    { return p.Body.Y + p.Body.H }

// Supports reports whether box is resting on the platform's top surface.
func (p *Platform) Supports(box gamemath.Rect) bool {
	return box.Bottom() >= p.Top()-1 && box.Shift(0, -1).Overlaps(p.Bounds())
}
