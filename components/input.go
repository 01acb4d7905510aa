package components

import (
	"github.com/automoto/adventurer/character"
	cfg "github.com/automoto/adventurer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Controls is what the movement resolver sees this tick.
	Controls character.Controls

	// DoorNeedsReset blocks doors until Down is released, so arriving
	// through a door with Down held does not walk straight back.
	DoorNeedsReset bool
}

var Input = donburi.NewComponentType[InputData]()
