package session

import "github.com/automoto/adventurer/shared/leveldata"

// Link is where a door leads.
type Link struct {
	ID         int
	TargetMap  string
	TargetDoor int
}

// Linked reports whether the door leads anywhere.
func (l Link) Linked() bool {
	return l.TargetMap != ""
}

// Transition returns the request that walks through the door.
func (l Link) Transition() Transition {
	return Transition{Map: l.TargetMap, DoorID: l.TargetDoor, Reason: Door}
}

// LinkOf reads the id, to_name and to_id properties of a door sprite.
func LinkOf(s leveldata.Sprite) Link {
	var l Link
	l.ID, _ = s.Int("id")
	l.TargetMap, _ = s.String("to_name")
	l.TargetDoor, _ = s.Int("to_id")
	return l
}

// CoinValue reads the Points property of a coin sprite.
func CoinValue(s leveldata.Sprite) (int, bool) {
	return s.Int("Points")
}
