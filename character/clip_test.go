package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipIndex(t *testing.T) {
	idle := Clip{Frames: 4, Divisor: 5}
	walk := Clip{Frames: 6, Divisor: 4}

	assert.Equal(t, 0, idle.Index(4))
	assert.Equal(t, 1, idle.Index(5))
	assert.Equal(t, 0, idle.Index(20), "wraps after 4 groups of 5")
	assert.Equal(t, 5, walk.Index(23))
	assert.Equal(t, 0, walk.Index(24))
	assert.Equal(t, 0, Clip{}.Index(10), "empty clip")
}

func TestClipOnceHoldsLastFrame(t *testing.T) {
	c := Clip{Frames: 5, Divisor: 4}
	assert.Equal(t, 4, c.Once(19))
	assert.Equal(t, 4, c.Once(40))
	assert.Equal(t, 20, c.Budget())
}

func TestParseCategory(t *testing.T) {
	for c := Category(0); c < CategoryCount; c++ {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("crouch")
	assert.Error(t, err)
}

func TestAttackStageCategories(t *testing.T) {
	assert.Equal(t, Attack1, AttackStage(1))
	assert.Equal(t, Attack3, AttackStage(3))
}
