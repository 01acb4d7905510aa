package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	m := &Map{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width) * tileW,
		Height: float64(levelMap.Height) * tileH,
		Layers: make(map[string]*Layer),
	}

	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("%s: layer %q has no tile data (infinite maps are not supported)", tmxPath, layer.Name)
		}

		l := &Layer{
			Name:     layer.Name,
			Parallax: parallax(layer.Properties),
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var props map[string]string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					props = properties(tilesetTile.Properties)
				}

				l.Sprites = append(l.Sprites, Sprite{
					X:          float64(x) * tileW,
					Y:          m.Height - float64(y+1)*tileH,
					W:          tileW,
					H:          tileH,
					Properties: props,
				})
			}
		}
		m.Layers[layer.Name] = l
	}

	for _, og := range levelMap.ObjectGroups {
		l := &Layer{
			Name:     og.Name,
			Parallax: parallax(og.Properties),
		}
		for _, o := range og.Objects {
			// Tile objects are anchored at their bottom-left corner,
			// everything else at the top-left.
			top := o.Y
			if o.GID != 0 {
				top = o.Y - o.Height
			}
			l.Sprites = append(l.Sprites, Sprite{
				X:          o.X,
				Y:          m.Height - top - o.Height,
				W:          o.Width,
				H:          o.Height,
				Name:       o.Name,
				Properties: properties(o.Properties),
			})
		}
		m.Layers[og.Name] = l
	}

	return m, nil
}

// LoadAll discovers all .tmx files in dir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Map, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*Map, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		m, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		maps[m.Name] = m
		names = append(names, m.Name)
	}

	sort.Strings(names)
	return maps, names, nil
}

func properties(props tiled.Properties) map[string]string {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]string, len(props))
	for _, p := range props {
		out[p.Name] = p.Value
	}
	return out
}

// parallax reads the parallax_x / parallax_y custom properties, defaulting
// each axis to 1.
func parallax(props tiled.Properties) Factor {
	f := Factor{X: 1, Y: 1}
	for _, p := range props {
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		switch p.Name {
		case "parallax_x":
			f.X = v
		case "parallax_y":
			f.Y = v
		}
	}
	return f
}
