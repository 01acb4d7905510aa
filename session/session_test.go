package session

import (
	"testing"

	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueuesStart(t *testing.T) {
	s := New("test2")

	tr, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, Transition{Map: "test2", DoorID: StartDoor, Reason: Start}, tr)

	_, ok = s.Take()
	assert.False(t, ok)
}

func TestFirstRequestWins(t *testing.T) {
	s := &Session{Map: "test2"}

	assert.True(t, s.Request(Transition{Map: "cave", DoorID: 2, Reason: Door}))
	assert.False(t, s.Restart(), "a fall in the same tick does not override the door")

	tr, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, "cave", tr.Map)
	assert.Equal(t, Door, tr.Reason)
}

func TestBeginResetsScore(t *testing.T) {
	s := &Session{Map: "test2"}
	s.Collect(5)
	s.Collect(10)
	assert.Equal(t, 15, s.Score)

	s.Begin(Transition{Map: "cave"})
	assert.Equal(t, "cave", s.Map)
	assert.Zero(t, s.Score)
}

func TestRestartUsesCurrentMap(t *testing.T) {
	s := &Session{Map: "cave"}
	require.True(t, s.Restart())

	tr, _ := s.Take()
	assert.Equal(t, Transition{Map: "cave", DoorID: StartDoor, Reason: Respawn}, tr)
}

func TestFellOut(t *testing.T) {
	assert.False(t, FellOut(-128, -128))
	assert.True(t, FellOut(-128.5, -128))
	assert.False(t, FellOut(0, -128))
}

func TestSpawn(t *testing.T) {
	m := &leveldata.Map{Layers: map[string]*leveldata.Layer{
		"Doors": {Sprites: []leveldata.Sprite{
			{X: 100, Y: 50, W: 64, H: 128, Properties: map[string]string{"id": "3"}},
		}},
	}}

	x, bottom, ok := Spawn(m, "Doors", 3, 32)
	assert.True(t, ok)
	assert.Equal(t, 132.0, x)
	assert.Equal(t, 82.0, bottom, "door centre 114 minus 32")

	x, bottom, ok = Spawn(m, "Doors", 9, 32)
	assert.False(t, ok)
	assert.Zero(t, x)
	assert.Zero(t, bottom)
}

func TestLinkOf(t *testing.T) {
	tests := []struct {
		name   string
		props  map[string]string
		want   Link
		linked bool
	}{
		{"full", map[string]string{"id": "1", "to_name": "cave", "to_id": "2"}, Link{ID: 1, TargetMap: "cave", TargetDoor: 2}, true},
		{"entry only", map[string]string{"id": "0"}, Link{}, false},
		{"no target door", map[string]string{"id": "4", "to_name": "cave"}, Link{ID: 4, TargetMap: "cave"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LinkOf(leveldata.Sprite{Properties: tt.props})
			assert.Equal(t, tt.want, l)
			assert.Equal(t, tt.linked, l.Linked())
		})
	}

	tr := Link{TargetMap: "cave", TargetDoor: 2}.Transition()
	assert.Equal(t, Transition{Map: "cave", DoorID: 2, Reason: Door}, tr)
}

func TestCoinValue(t *testing.T) {
	v, ok := CoinValue(leveldata.Sprite{Properties: map[string]string{"Points": "10"}})
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = CoinValue(leveldata.Sprite{})
	assert.False(t, ok)
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "door", Door.String())
	assert.Equal(t, "respawn", Respawn.String())
	assert.Equal(t, "unknown", Reason(9).String())
}
