// Package session tracks the score and the map the character is on, and
// queues map changes so they happen between ticks.
package session

import "github.com/automoto/adventurer/shared/leveldata"

// StartDoor is the door the character appears at when a map is entered
// from the start screen or after a fall.
const StartDoor = 0

// Reason says why a map is being built.
type Reason int

const (
	Start Reason = iota
	Door
	Respawn
)

func (r Reason) String() string {
	switch r {
	case Start:
		return "start"
	case Door:
		return "door"
	case Respawn:
		return "respawn"
	}
	return "unknown"
}

// Transition is a request to rebuild the world on a map.
type Transition struct {
	Map    string
	DoorID int
	Reason Reason
}

// Session is the state that outlives a single map load.
type Session struct {
	Map     string
	Score   int
	Pending *Transition
}

// New returns a session with a pending start on mapName.
func New(mapName string) *Session {
	s := &Session{}
	s.Request(Transition{Map: mapName, DoorID: StartDoor, Reason: Start})
	return s
}

// Request queues t. Only the first request between two Take calls is kept.
func (s *Session) Request(t Transition) bool {
	if s.Pending != nil {
		return false
	}
	s.Pending = &t
	return true
}

// Take removes and returns the pending transition.
func (s *Session) Take() (Transition, bool) {
	if s.Pending == nil {
		return Transition{}, false
	}
	t := *s.Pending
	s.Pending = nil
	return t, true
}

// Begin records that the world was rebuilt for t. The score restarts with
// every build.
func (s *Session) Begin(t Transition) {
	s.Map = t.Map
	s.Score = 0
}

// Collect adds a coin's points to the score.
func (s *Session) Collect(points int) {
	s.Score += points
}

// Restart requests a rebuild of the current map at the start door.
func (s *Session) Restart() bool {
	return s.Request(Transition{Map: s.Map, DoorID: StartDoor, Reason: Respawn})
}

// FellOut reports whether a character whose bottom is at y has left the
// map through the floor.
func FellOut(bottom, limit float64) bool {
	return bottom < limit
}

// Spawn returns the centre x and bottom y of a character entering m
// through door id. The character stands offset below the door's centre.
// A map without that door puts the character at the origin.
func Spawn(m *leveldata.Map, layer string, id int, offset float64) (centerX, bottom float64, found bool) {
	door, ok := m.Door(layer, id)
	if !ok {
		return 0, 0, false
	}
	return door.CenterX(), door.CenterY() - offset, true
}
