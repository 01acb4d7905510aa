package assets

import (
	"bytes"
	"embed"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/adventurer/character"
	cfg "github.com/automoto/adventurer/config"
	"github.com/automoto/adventurer/shared/leveldata"
	"github.com/automoto/adventurer/shared/manifest"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:tilemaps
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

var (
	imageLoader = NewImageLoader()
	levelImages = make(map[string]*LevelImages)
)

func GetObjectImage(name string) *ebiten.Image {
	return imageLoader.MustLoadImage(path.Join("images/objects", name))
}

func mapPath(name string) string {
	return path.Join(cfg.Level.MapDir, name+".tmx")
}

// MustLoadMap parses the named map from the embedded tilemaps.
func MustLoadMap(name string) *leveldata.Map {
	m, err := leveldata.Load(levelFS, mapPath(name))
	if err != nil {
		panic(fmt.Errorf("load map %s: %w", name, err))
	}
	return m
}

// MustLoadLevels parses and renders every embedded map once and returns
// their names. A broken map or tileset fails here instead of when a door
// leads to it.
func MustLoadLevels() []string {
	_, names, err := leveldata.LoadAll(levelFS, cfg.Level.MapDir)
	if err != nil {
		panic(fmt.Errorf("load levels: %w", err))
	}

	skip := entityLayers()
	for _, name := range names {
		layers, err := leveldata.Render(levelFS, mapPath(name), skip)
		if err != nil {
			panic(fmt.Errorf("render map %s: %w", name, err))
		}
		imgs := &LevelImages{Layers: make(map[string]LayerImage, len(layers))}
		for _, l := range layers {
			imgs.Layers[l.Name] = LayerImage{
				Image:   ebiten.NewImageFromImage(l.Image),
				Opacity: l.Opacity,
			}
			imgs.Order = append(imgs.Order, l.Name)
		}
		levelImages[name] = imgs
	}
	return names
}

// LayerImage is one pre-rendered tile layer. The image is in map space
// with y growing downward, the same size as the whole map.
type LayerImage struct {
	Image   *ebiten.Image
	Opacity float32
}

// LevelImages holds the tile layers of a map by name. Order lists the
// names in the order the map file declares them.
type LevelImages struct {
	Layers map[string]LayerImage
	Order  []string
}

// entityLayers are drawn per entity so they can move or disappear.
func entityLayers() map[string]bool {
	return map[string]bool{
		cfg.Level.CoinLayer:   true,
		cfg.Level.DoorLayer:   true,
		cfg.Level.MovingLayer: true,
	}
}

// RenderedLevel returns the layer images of a map rendered by
// MustLoadLevels.
func RenderedLevel(name string) (*LevelImages, bool) {
	imgs, ok := levelImages[name]
	return imgs, ok
}

// TextureSet is every texture of the character, right and left facing.
type TextureSet struct {
	Clips    character.Clips
	textures [2][character.CategoryCount][]*ebiten.Image
}

// MustLoadTextureSet reads the manifest at manifestPath and loads the
// textures it lists. Left-facing textures are mirrored copies.
func MustLoadTextureSet(manifestPath string) *TextureSet {
	data, err := imageFS.ReadFile(manifestPath)
	if err != nil {
		panic(fmt.Errorf("read manifest %s: %w", manifestPath, err))
	}
	m, err := manifest.Parse(data)
	if err != nil {
		panic(fmt.Errorf("%s: %w", manifestPath, err))
	}

	ts := &TextureSet{
		Clips: m.Clips(cfg.AnimationDivisors, cfg.AnimationDivisor),
	}
	for c := character.Category(0); c < character.CategoryCount; c++ {
		for _, p := range m.Paths(c) {
			img := imageLoader.MustLoadImage(p)
			ts.textures[character.Right][c] = append(ts.textures[character.Right][c], img)
			ts.textures[character.Left][c] = append(ts.textures[character.Left][c], mirror(img))
		}
	}
	return ts
}

// Frame returns the texture for f. Out of range indices wrap.
func (ts *TextureSet) Frame(f character.Frame) *ebiten.Image {
	list := ts.textures[f.Facing][f.Category]
	if len(list) == 0 {
		return nil
	}
	i := f.Index % len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i]
}

func mirror(img *ebiten.Image) *ebiten.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	out := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	out.DrawImage(img, op)
	return out
}

// HasMap reports whether a map with the given name is embedded.
func HasMap(name string) bool {
	_, err := fs.Stat(levelFS, mapPath(name))
	return err == nil
}
