package platforms

import (
	"math"

	"github.com/automoto/adventurer/shared/gamemath"
)

// Move advances a platform by its velocity and refreshes its cells in the
// space.
func Move(p *Platform) {
	if p.Velocity.X == 0 && p.Velocity.Y == 0 {
		return
	}
	p.Body.X += p.Velocity.X
	p.Body.Y += p.Velocity.Y
	p.Body.Update()
}

// Reflect turns a moving platform around when it has crossed a boundary
// while still heading past it. Each axis is checked on its own.
func Reflect(p *Platform) {
	b := p.Boundary
	v := &p.Velocity

	if b.Right != nil && p.Right() > *b.Right && v.X > 0 {
		v.X = -v.X
	}
	if b.Left != nil && p.Left() < *b.Left && v.X < 0 {
		v.X = -v.X
	}
	if b.Top != nil && p.Top() > *b.Top && v.Y > 0 {
		v.Y = -v.Y
	}
	if b.Bottom != nil && p.Bottom() < *b.Bottom && v.Y < 0 {
		v.Y = -v.Y
	}
}

// Push returns how far box has to move to clear a platform that has just
// moved into it. Only the axes the platform travels along are tried, and
// the shorter way out wins. ok is false when box is clear.
func Push(p *Platform, box gamemath.Rect) (dx, dy float64, ok bool) {
	if !box.Overlaps(p.Bounds()) {
		return 0, 0, false
	}

	v := p.Velocity
	switch {
	case v.X > 0:
		dx = p.Right() - box.Left()
	case v.X < 0:
		dx = p.Left() - box.Right()
	}
	switch {
	case v.Y > 0:
		dy = p.Top() - box.Bottom()
	case v.Y < 0:
		dy = p.Bottom() - box.Top()
	}

	switch {
	case dx == 0 && dy == 0:
		return 0, 0, false
	case dx != 0 && dy != 0:
		if math.Abs(dx) <= math.Abs(dy) {
			dy = 0
		} else {
			dx = 0
		}
	}
	return dx, dy, true
}
