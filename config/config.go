package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MaxSpeed     float64
	Acceleration float64
	JumpSpeed    float64
	FallSpeed    float64
	ClimbSpeed   float64

	// Jumping
	JumpMargin float64 // ground reach required to start a jump
	JumpHold   int     // ticks after a jump during which holding up keeps rising

	// Attack
	AttackLunge float64 // horizontal displacement of an air attack

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	CenterOffsetY   float64 // sprite centre above the collision bottom
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity     float64
	GroundReach float64 // distance below the character that still counts as grounded
	CellSize    int     // resolv space cell size
}

// CameraConfig contains viewport scrolling configuration
type CameraConfig struct {
	TopMargin    float64
	BottomMargin float64
}

// LevelConfig contains map and platform configuration
type LevelConfig struct {
	TileSize          float64
	PassThreshold     float64 // how far below a passable top the character may stand
	StartMap          string
	MapDir            string
	DoorSpawnOffset   float64 // spawn bottom sits this far under a door's centre
	FallLimit         float64 // character bottom below which the map restarts
	ParallaxLayers    int
	BackgroundPrefix  string
	ForegroundPrefix  string
	DefaultBackground color.RGBA

	// Tiled layer names
	PlatformLayer string
	PassableLayer string
	MovingLayer   string
	LadderLayer   string
	CoinLayer     string
	DoorLayer     string
}

// HUDConfig contains on-screen text configuration
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	ShadowCol color.RGBA
}

// FadeConfig contains the screen fade played after a map loads
type FadeConfig struct {
	Duration float32 // seconds
	Color    color.RGBA
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowHitboxes bool
	SolidColor   color.RGBA
	PassColor    color.RGBA
	PlayerColor  color.RGBA
	TriggerColor color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Level LevelConfig
var HUD HUDConfig
var Fade FadeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Adventurer",
	}

	Player = PlayerConfig{
		MaxSpeed:     7,
		Acceleration: 0.7,
		JumpSpeed:    18,
		FallSpeed:    18,
		ClimbSpeed:   7,

		JumpMargin: 10,
		JumpHold:   12,

		AttackLunge: 30,

		CollisionWidth:  54,
		CollisionHeight: 92,
		CenterOffsetY:   64,
	}

	Physics = PhysicsConfig{
		Gravity:     1.5,
		GroundReach: 5,
		CellSize:    32,
	}

	Camera = CameraConfig{
		TopMargin:    100,
		BottomMargin: 150,
	}

	Level = LevelConfig{
		TileSize:          64,
		PassThreshold:     10,
		StartMap:          "test2",
		MapDir:            "tilemaps",
		DoorSpawnOffset:   32,
		FallLimit:         -128,
		ParallaxLayers:    4,
		BackgroundPrefix:  "Background",
		ForegroundPrefix:  "Foreground",
		DefaultBackground: SkyBlue,

		PlatformLayer: "Platforms",
		PassableLayer: "Passable Platforms",
		MovingLayer:   "Moving Platforms",
		LadderLayer:   "Ladders",
		CoinLayer:     "Coins",
		DoorLayer:     "Doors",
	}

	HUD = HUDConfig{
		Margin:    10,
		TextColor: White,
		ShadowCol: BlackOverlay,
	}

	Fade = FadeConfig{
		Duration: 0.5,
		Color:    Black,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		SolidColor:   Grey,
		PassColor:    Black,
		PlayerColor:  Red,
		TriggerColor: Yellow,
	}
}
