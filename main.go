package main

import (
	"log"

	"github.com/automoto/adventurer/assets"
	"github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/fonts"
	"github.com/automoto/adventurer/scenes"
	"github.com/automoto/adventurer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// NewGame loads every asset up front so missing or broken data fails
// before the window opens.
func NewGame() *Game {
	fonts.MustLoadFontWithSize(fonts.HUD, goregular.TTF, 18)
	fonts.MustLoadFontWithSize(fonts.Debug, goregular.TTF, 12)

	maps := assets.MustLoadLevels()
	log.Printf("Loaded %d maps: %v", len(maps), maps)
	systems.MustPreloadAllSFX()
	systems.PlayerTextures()

	return &Game{
		scene: scenes.NewPlatformerScene(config.Level.StartMap),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
