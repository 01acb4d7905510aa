package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SettingsData holds the toggles the player can flip while playing.
type SettingsData struct {
	Muted     bool
	SFXVolume float64
	Debug     bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// FadeData is the overlay shown after a map is built. Alpha runs from 1
// down to 0.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
