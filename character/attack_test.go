package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickGround runs n grounded attack ticks and returns the categories shown.
func tickGround(a *Attack, n int) []Category {
	shown := make([]Category, 0, n)
	for i := 0; i < n; i++ {
		c, _, outcome := a.Update(false, &testClips)
		if outcome == AttackPlaying {
			shown = append(shown, c)
		}
	}
	return shown
}

func TestGroundComboChainsThroughThreeStages(t *testing.T) {
	var a Attack

	a.Press(true, false, Right, 30)
	require.Equal(t, PhaseGroundCombo, a.Phase())
	require.Equal(t, 1, a.Stage)

	// queue stage 2 part way through stage 1
	tickGround(&a, 10)
	a.Press(true, false, Right, 30)
	assert.True(t, a.QueuedNext)
	assert.Equal(t, 1, a.Stage, "queued press does not advance early")

	tickGround(&a, 10)
	assert.Equal(t, 2, a.Stage, "stage 1 lasts 20 ticks")
	assert.False(t, a.QueuedNext)

	a.Press(true, false, Right, 30)
	tickGround(&a, 23)
	assert.Equal(t, 2, a.Stage)
	tickGround(&a, 1)
	assert.Equal(t, 3, a.Stage, "stage 2 lasts 24 ticks")

	// a press at the last stage is dropped
	dx := a.Press(true, false, Right, 30)
	assert.Zero(t, dx)
	assert.False(t, a.QueuedNext)
	assert.Equal(t, 3, a.Stage)

	tickGround(&a, 23)
	assert.Equal(t, 3, a.Stage)
	tickGround(&a, 1)
	assert.Equal(t, PhaseIdle, a.Phase(), "stage 3 lasts 24 ticks then returns to idle")
	assert.Zero(t, a.Stage)
	assert.Zero(t, a.FrameCounter)
}

func TestGroundComboWithoutQueueEndsAfterStage(t *testing.T) {
	var a Attack
	a.Press(true, false, Left, 30)

	shown := tickGround(&a, 20)
	assert.Len(t, shown, 20)
	for _, c := range shown {
		assert.Equal(t, Attack1, c)
	}
	assert.False(t, a.Active)
}

func TestGroundComboTextureIndex(t *testing.T) {
	var a Attack
	a.Press(true, false, Right, 30)

	indexes := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		_, idx, _ := a.Update(false, &testClips)
		indexes = append(indexes, idx)
	}
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4}, indexes)
}

func TestAirAttack(t *testing.T) {
	var a Attack

	dx := a.Press(false, false, Right, 30)
	assert.Equal(t, 30.0, dx)
	assert.Equal(t, PhaseAirAttack, a.Phase())
	assert.True(t, a.Airborne)

	for i := 0; i < 15; i++ {
		c, _, outcome := a.Update(true, &testClips)
		require.Equal(t, AttackPlaying, outcome)
		require.Equal(t, AirAttack, c)
	}
	_, idx, outcome := a.Update(true, &testClips)
	assert.Equal(t, AttackPlaying, outcome)
	assert.Equal(t, 3, idx)
	assert.Equal(t, PhaseIdle, a.Phase(), "air attack lasts 16 ticks")
}

func TestAirAttackLungeFollowsFacing(t *testing.T) {
	tests := []struct {
		facing Facing
		want   float64
	}{
		{Right, 30},
		{Left, -30},
	}
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			var a Attack
			assert.Equal(t, tt.want, a.Press(false, false, tt.facing, 30))
		})
	}
}

func TestAirAttackEndsOnLanding(t *testing.T) {
	var a Attack
	a.Press(false, false, Right, 30)
	a.Update(true, &testClips)

	_, _, outcome := a.Update(false, &testClips)
	assert.Equal(t, AttackNone, outcome)
	assert.Equal(t, PhaseIdle, a.Phase())
}

func TestPressOnLadderIsIgnored(t *testing.T) {
	var a Attack
	dx := a.Press(false, true, Right, 30)
	assert.Zero(t, dx)
	assert.Equal(t, PhaseIdle, a.Phase())
}

// Leaving the ground mid-combo cancels it. Pressing attack again in the air
// lunges once and turns it into an air attack.
func TestAirbornePressDuringGroundCombo(t *testing.T) {
	var a Attack
	a.Press(true, false, Left, 30)
	tickGround(&a, 5)
	a.Press(true, false, Left, 30)
	require.True(t, a.QueuedNext)

	dx := a.Press(false, false, Left, 30)
	assert.Equal(t, -30.0, dx, "exactly one lunge toward facing")
	assert.Zero(t, a.Stage)
	assert.False(t, a.QueuedNext)
	assert.Equal(t, PhaseAirAttack, a.Phase())

	c, _, outcome := a.Update(true, &testClips)
	assert.Equal(t, AttackPlaying, outcome)
	assert.Equal(t, AirAttack, c)
}

// Documented quirk: becoming airborne without a new press cancels the ground
// combo outright with no displacement and no texture change.
func TestLeavingGroundCancelsCombo(t *testing.T) {
	var a Attack
	a.Press(true, false, Right, 30)
	tickGround(&a, 3)

	_, _, outcome := a.Update(true, &testClips)
	assert.Equal(t, AttackCancelled, outcome)
	assert.Equal(t, Attack{}, a)
}

func TestLockedOnlyDuringGroundCombo(t *testing.T) {
	var a Attack
	assert.False(t, a.Locked())

	a.Press(false, false, Right, 30)
	assert.False(t, a.Locked())

	a.Reset()
	a.Press(true, false, Right, 30)
	assert.True(t, a.Locked())
}
