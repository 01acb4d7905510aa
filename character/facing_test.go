package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacingTurnOnlyOnStrictSignChange(t *testing.T) {
	velocities := []float64{0, 3, 0, -2, 0, 0, -0.5, 1, 0}
	want := []Facing{Right, Right, Right, Left, Left, Left, Left, Right, Right}

	f := Right
	for i, vx := range velocities {
		f = f.Turn(vx)
		assert.Equal(t, want[i], f, "tick %d vx=%v", i, vx)
	}
}

func TestFacingSign(t *testing.T) {
	assert.Equal(t, 1.0, Right.Sign())
	assert.Equal(t, -1.0, Left.Sign())
	assert.Equal(t, "left", Left.String())
}

func TestAnimateNeverFlipsOnZeroVelocity(t *testing.T) {
	s := newTestState()
	s.Grounded = true
	s.Facing = Left

	for i := 0; i < 50; i++ {
		Animate(&s, &testClips)
		assert.Equal(t, Left, s.Facing)
		assert.Equal(t, Left, s.Frame.Facing)
	}
}
