package systems

import (
	"github.com/automoto/adventurer/components"
	cfg "github.com/automoto/adventurer/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the mute, volume and debug keys. Audio changes
// are saved right away.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		SaveCurrentSettings(settings)
	}

	if GetAction(input, cfg.ActionVolume).JustPressed {
		settings.SFXVolume = nextVolumeStep(settings.SFXVolume)
		SetSFXVolume(settings.SFXVolume)
		SaveCurrentSettings(settings)
	}

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the global audio state.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Muted:     IsMuted(),
			SFXVolume: GetSFXVolume(),
			Debug:     cfg.Debug.ShowHitboxes,
		})
	}
	return components.Settings.Get(entry)
}

// nextVolumeStep returns the first configured step above current, wrapping
// to the lowest step.
func nextVolumeStep(current float64) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	for _, v := range steps {
		if v > current+0.001 {
			return v
		}
	}
	return steps[0]
}
