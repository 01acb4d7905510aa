package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimatePriority(t *testing.T) {
	tests := []struct {
		name      string
		onLadder  bool
		attacking bool
		vx, vy    float64
		want      Category
	}{
		{"ladder beats everything", true, true, 3, 5, Climb},
		{"ladder at rest", true, false, 0, 0, Climb},
		{"attack beats jump", false, true, 0, 5, Attack1},
		{"attack beats walk", false, true, 4, 0, Attack1},
		{"rising", false, false, 3, 5, Jump},
		{"falling", false, false, -3, -2, Fall},
		{"standing", false, false, 0, 0, Idle},
		{"walking", false, false, 2.1, 0, Walk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.OnLadder = tt.onLadder
			s.Grounded = !tt.onLadder
			s.Velocity = vel(tt.vx, tt.vy)
			if tt.attacking {
				s.Attack.Press(true, false, s.Facing, 30)
			}

			got := Animate(&s, &testClips)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, got, s.Frame)
		})
	}
}

func TestAnimateCounterAdvancesEveryTick(t *testing.T) {
	s := newTestState()
	s.Grounded = true

	setups := []func(){
		func() { s.OnLadder = true },
		func() { s.OnLadder = false; s.Attack.Press(true, false, s.Facing, 30) },
		func() { s.Attack.Reset(); s.Velocity = vel(0, 3) },
		func() { s.Velocity = vel(0, -3) },
		func() { s.Velocity = vel(0, 0) },
		func() { s.Velocity = vel(2, 0) },
	}
	for i, setup := range setups {
		setup()
		Animate(&s, &testClips)
		assert.Equal(t, i+1, s.AnimationFrame)
	}
}

func TestIdleUsesSlowerCadence(t *testing.T) {
	s := newTestState()
	s.Grounded = true

	var idle, walk []int
	for i := 0; i < 10; i++ {
		idle = append(idle, Animate(&s, &testClips).Index)
	}

	s = newTestState()
	s.Grounded = true
	for i := 0; i < 10; i++ {
		s.Velocity = vel(1, 0)
		walk = append(walk, Animate(&s, &testClips).Index)
	}

	// counters run 1..10
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 2}, idle)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 1, 2, 2, 2}, walk)
}

func TestClimbCounterOnlyAdvancesWhileMoving(t *testing.T) {
	s := newTestState()
	s.OnLadder = true

	for i := 0; i < 8; i++ {
		Animate(&s, &testClips)
	}
	assert.Zero(t, s.ClimbFrame, "standing still on a ladder")

	s.Velocity = vel(0, 7)
	for i := 0; i < 8; i++ {
		Animate(&s, &testClips)
	}
	assert.Equal(t, 8, s.ClimbFrame)
	assert.Equal(t, 2, s.Frame.Index)

	s.Velocity = vel(0.5, -1)
	Animate(&s, &testClips)
	assert.Equal(t, 8, s.ClimbFrame, "slow drift does not count")

	s.OnLadder = false
	s.Grounded = true
	s.Velocity = vel(0, 0)
	Animate(&s, &testClips)
	assert.False(t, s.Climbing)
	assert.Equal(t, 8, s.ClimbFrame, "leaving the ladder keeps the counter")
}

func TestGroundComboFreezesHorizontalVelocity(t *testing.T) {
	s := newTestState()
	s.Grounded = true
	s.Velocity = vel(5, 0)
	s.Attack.Press(true, false, s.Facing, 30)

	Animate(&s, &testClips)
	assert.Zero(t, s.Velocity.X)
}

func TestCancelledComboKeepsPreviousFrame(t *testing.T) {
	s := newTestState()
	s.Grounded = true
	s.Attack.Press(true, false, s.Facing, 30)
	before := Animate(&s, &testClips)
	assert.Equal(t, Attack1, before.Category)

	s.Grounded = false
	s.Velocity = vel(0, 10)
	got := Animate(&s, &testClips)
	assert.Equal(t, before, got)
	assert.False(t, s.Attack.Active)

	got = Animate(&s, &testClips)
	assert.Equal(t, Jump, got.Category)
}

func TestFrameCarriesFacing(t *testing.T) {
	s := newTestState()
	s.Grounded = true
	s.Velocity = vel(-1, 0)

	f := Animate(&s, &testClips)
	assert.Equal(t, Left, f.Facing)
	assert.Equal(t, Walk, f.Category)
}
