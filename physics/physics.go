// Package physics is a platformer movement solver on top of a resolv space.
// Positions are in world space with y growing upward: an object's X, Y is its
// lower-left corner.
package physics

import (
	"github.com/automoto/adventurer/shared/gamemath"
	"github.com/automoto/adventurer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Engine moves one body through a space, stopping it against solid objects
// and letting it climb ladders without gravity.
type Engine struct {
	Body    *resolv.Object
	Gravity float64
}

func NewEngine(body *resolv.Object, gravity float64) *Engine {
	return &Engine{Body: body, Gravity: gravity}
}

// Update applies gravity, moves the body by vel one axis at a time and
// returns every solid object it ran into. Velocity along a blocked axis is
// zeroed.
func (e *Engine) Update(vel *math.Vec2) []*resolv.Object {
	if !e.IsOnLadder() {
		vel.Y -= e.Gravity
	}

	hits := e.moveY(vel)
	for _, o := range e.moveX(vel) {
		if !contains(hits, o) {
			hits = append(hits, o)
		}
	}

	e.Body.Update()
	return hits
}

// CanJump reports whether there is solid ground within margin pixels below
// the body.
func (e *Engine) CanJump(margin float64) bool {
	return len(Overlapping(e.Body, 0, -margin, tags.ResolvSolid)) > 0
}

// IsOnLadder reports whether the body overlaps a ladder.
func (e *Engine) IsOnLadder() bool {
	return len(Overlapping(e.Body, 0, 0, tags.ResolvLadder)) > 0
}

// Shift moves the body by dx, dy on behalf of something pushing it, one
// axis at a time, stopping it flush against solid objects other than
// pusher.
func (e *Engine) Shift(dx, dy float64, pusher *resolv.Object) {
	if dx != 0 {
		e.slide(dx, true, pusher)
	}
	if dy != 0 {
		e.slide(dy, false, pusher)
	}
	e.Body.Update()
}

func (e *Engine) moveY(vel *math.Vec2) []*resolv.Object {
	hits := e.slide(vel.Y, false, nil)
	if len(hits) > 0 {
		vel.Y = 0
	}
	return hits
}

func (e *Engine) moveX(vel *math.Vec2) []*resolv.Object {
	if vel.X == 0 {
		return nil
	}
	hits := e.slide(vel.X, true, nil)
	if len(hits) > 0 {
		vel.X = 0
	}
	return hits
}

// slide moves the body by d along one axis and backs it out of any solid
// object it ends up in, except ignore. Moving up or right stops under or
// left of what was hit; anything else stands on it or stops right of it.
func (e *Engine) slide(d float64, horizontal bool, ignore *resolv.Object) []*resolv.Object {
	if horizontal {
		e.Body.X += d
	} else {
		e.Body.Y += d
	}

	var hits []*resolv.Object
	for _, o := range Overlapping(e.Body, 0, 0, tags.ResolvSolid) {
		if o != ignore {
			hits = append(hits, o)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	switch {
	case horizontal && d > 0:
		left := hits[0].X
		for _, o := range hits[1:] {
			left = min(left, o.X)
		}
		e.Body.X = left - e.Body.W
	case horizontal:
		right := hits[0].X + hits[0].W
		for _, o := range hits[1:] {
			right = max(right, o.X+o.W)
		}
		e.Body.X = right
	case d > 0:
		// Bumped a ceiling: sit just under the lowest underside.
		lowest := hits[0].Y
		for _, o := range hits[1:] {
			lowest = min(lowest, o.Y)
		}
		e.Body.Y = lowest - e.Body.H
	default:
		// Landed: stand on the highest top.
		highest := hits[0].Y + hits[0].H
		for _, o := range hits[1:] {
			highest = max(highest, o.Y+o.H)
		}
		e.Body.Y = highest
	}
	return hits
}

// Overlapping returns the objects tagged with any of tags whose bounds
// intersect body's bounds moved by (dx, dy). The space's cell lookup is only
// a broad phase; results are filtered with an exact box test.
func Overlapping(body *resolv.Object, dx, dy float64, tags ...string) []*resolv.Object {
	check := body.Check(dx, dy, tags...)
	if check == nil {
		return nil
	}

	box := Bounds(body).Shift(dx, dy)
	var out []*resolv.Object
	for _, o := range check.Objects {
		if o != body && box.Overlaps(Bounds(o)) {
			out = append(out, o)
		}
	}
	return out
}

// Bounds returns the object's box.
func Bounds(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func contains(objects []*resolv.Object, o *resolv.Object) bool {
	for _, x := range objects {
		if x == o {
			return true
		}
	}
	return false
}
