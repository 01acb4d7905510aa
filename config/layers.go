package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in order
const (
	Background ecs.LayerID = iota
	Default
	Foreground
	Overlay
)
