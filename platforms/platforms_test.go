package platforms

import (
	"testing"

	"github.com/automoto/adventurer/shared/gamemath"
	"github.com/automoto/adventurer/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

type recordingIndex struct {
	added, removed int
}

func (r *recordingIndex) Add(objects ...*resolv.Object)    { r.added += len(objects) }
func (r *recordingIndex) Remove(objects ...*resolv.Object) { r.removed += len(objects) }

func newPassable() *Platform {
	// top at 200
	return &Platform{
		Kind:   Passable,
		Active: true,
		Body:   resolv.NewObject(0, 136, 64, 64, tags.ResolvSolid, tags.ResolvPassable),
	}
}

func ptr(v float64) *float64 { return &v }

func TestPassableGateThreshold(t *testing.T) {
	tests := []struct {
		name       string
		active     bool
		bottom     float64
		wantActive bool
		wantFlip   bool
	}{
		{"below threshold deactivates", true, 189, false, true},
		{"exactly at threshold stays solid", true, 190, true, false},
		{"standing on top stays solid", true, 200, true, false},
		{"rising past threshold activates", false, 190, true, true},
		{"still below stays open", false, 120, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPassable()
			p.Active = tt.active
			idx := &recordingIndex{}

			flipped := UpdatePassable(p, tt.bottom, 10, idx)
			assert.Equal(t, tt.wantFlip, flipped)
			assert.Equal(t, tt.wantActive, p.Active)
			if tt.wantFlip && tt.wantActive {
				assert.Equal(t, 1, idx.added)
			}
			if tt.wantFlip && !tt.wantActive {
				assert.Equal(t, 1, idx.removed)
			}
		})
	}
}

func TestPassableGateIsIdempotent(t *testing.T) {
	p := newPassable()
	idx := &recordingIndex{}

	for i := 0; i < 10; i++ {
		UpdatePassable(p, 100, 10, idx)
	}
	assert.Equal(t, 0, idx.added)
	assert.Equal(t, 1, idx.removed)

	for i := 0; i < 10; i++ {
		UpdatePassable(p, 250, 10, idx)
	}
	assert.Equal(t, 1, idx.added)
	assert.Equal(t, 1, idx.removed)
}

func TestPassableGateIgnoresOtherKinds(t *testing.T) {
	p := newPassable()
	p.Kind = Solid
	idx := &recordingIndex{}

	assert.False(t, UpdatePassable(p, 0, 10, idx))
	assert.True(t, p.Active)
	assert.Zero(t, idx.removed)
}

func TestPassableGateUpdatesSpace(t *testing.T) {
	space := resolv.NewSpace(256, 256, 16, 16)
	p := newPassable()
	space.Add(p.Body)

	UpdatePassable(p, 50, 10, space)
	assert.NotContains(t, space.Objects(), p.Body)

	UpdatePassable(p, 200, 10, space)
	assert.Contains(t, space.Objects(), p.Body)
}

func newMoving(x, vx float64) *Platform {
	return &Platform{
		Kind:     Moving,
		Velocity: math.Vec2{X: vx},
		Body:     resolv.NewObject(x, 100, 64, 32, tags.ResolvSolid, tags.ResolvMoving),
	}
}

func TestReflectRightBoundary(t *testing.T) {
	// right edge starts at 490
	p := newMoving(426, 5)
	p.Boundary.Right = ptr(500)

	var rights []float64
	for i := 0; i < 6; i++ {
		Move(p)
		Reflect(p)
		rights = append(rights, p.Right())
	}

	assert.Equal(t, []float64{495, 500, 505, 500, 495, 490}, rights)
	assert.Equal(t, -5.0, p.Velocity.X)
}

func TestReflectEachSide(t *testing.T) {
	tests := []struct {
		name     string
		boundary Boundary
		x, y     float64
		v        math.Vec2
		want     math.Vec2
	}{
		{"left", Boundary{Left: ptr(100)}, 99, 100, math.Vec2{X: -2}, math.Vec2{X: 2}},
		{"top", Boundary{Top: ptr(120)}, 0, 100, math.Vec2{Y: 3}, math.Vec2{Y: -3}},
		{"bottom", Boundary{Bottom: ptr(101)}, 0, 100, math.Vec2{Y: -3}, math.Vec2{Y: 3}},
		{"both axes at once", Boundary{Right: ptr(50), Top: ptr(120)}, 0, 100, math.Vec2{X: 1, Y: 1}, math.Vec2{X: -1, Y: -1}},
		{"already heading back", Boundary{Right: ptr(50)}, 0, 100, math.Vec2{X: -1}, math.Vec2{X: -1}},
		{"no boundary no limit", Boundary{}, 5000, 5000, math.Vec2{X: 4, Y: -4}, math.Vec2{X: 4, Y: -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Platform{
				Kind:     Moving,
				Boundary: tt.boundary,
				Velocity: tt.v,
				Body:     resolv.NewObject(tt.x, tt.y, 64, 32),
			}
			Reflect(p)
			assert.Equal(t, tt.want, p.Velocity)
		})
	}
}

func TestSupports(t *testing.T) {
	p := newMoving(100, 0)
	require.Equal(t, 132.0, p.Top())

	assert.True(t, p.Supports(gamemath.Rect{X: 120, Y: 132, W: 54, H: 92}))
	assert.False(t, p.Supports(gamemath.Rect{X: 120, Y: 140, W: 54, H: 92}), "in the air")
	assert.False(t, p.Supports(gamemath.Rect{X: 164, Y: 132, W: 54, H: 92}), "beside it")
	assert.False(t, p.Supports(gamemath.Rect{X: 120, Y: 40, W: 54, H: 92}), "underneath")
}

func TestPush(t *testing.T) {
	// platform spans x 100..164, y 100..132
	tests := []struct {
		name   string
		v      math.Vec2
		box    gamemath.Rect
		dx, dy float64
		ok     bool
	}{
		{"swept right into", math.Vec2{X: 5}, gamemath.Rect{X: 160, Y: 64, W: 54, H: 92}, 4, 0, true},
		{"swept left into", math.Vec2{X: -5}, gamemath.Rect{X: 50, Y: 64, W: 54, H: 92}, -4, 0, true},
		{"descended onto", math.Vec2{Y: -2}, gamemath.Rect{X: 110, Y: 10, W: 54, H: 92}, 0, -2, true},
		{"rose into", math.Vec2{Y: 2}, gamemath.Rect{X: 110, Y: 130, W: 54, H: 92}, 0, 2, true},
		{"diagonal takes the shorter way", math.Vec2{X: 5, Y: -2}, gamemath.Rect{X: 160, Y: 10, W: 54, H: 92}, 0, -2, true},
		{"clear", math.Vec2{X: 5}, gamemath.Rect{X: 300, Y: 64, W: 54, H: 92}, 0, 0, false},
		{"resting on top", math.Vec2{X: 5}, gamemath.Rect{X: 110, Y: 132, W: 54, H: 92}, 0, 0, false},
		{"not moving", math.Vec2{}, gamemath.Rect{X: 110, Y: 64, W: 54, H: 92}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newMoving(100, 0)
			p.Velocity = tt.v
			dx, dy, ok := Push(p, tt.box)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}
