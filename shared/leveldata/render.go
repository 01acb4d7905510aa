package leveldata

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// RenderedLayer is one tile layer drawn over the whole map, in map space
// with y growing downward.
type RenderedLayer struct {
	Name    string
	Image   image.Image
	Opacity float32
}

// Render draws every tile layer of a TMX file in the order the file
// declares them. Layers named in skip and fully transparent layers are
// left out. A missing or broken tileset image is an error.
func Render(fsys fs.FS, tmxPath string, skip map[string]bool) ([]RenderedLayer, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", tmxPath, err)
	}

	var out []RenderedLayer
	for i, layer := range levelMap.Layers {
		if skip[layer.Name] || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("%s: render layer %q: %w", tmxPath, layer.Name, err)
		}
		out = append(out, RenderedLayer{
			Name:    layer.Name,
			Image:   imaging.Clone(renderer.Result),
			Opacity: float32(layer.Opacity),
		})
		renderer.Clear()
	}
	return out, nil
}
