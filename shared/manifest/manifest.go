// Package manifest reads the YAML file listing the textures of each
// character animation category.
package manifest

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/automoto/adventurer/character"
)

// Manifest lists texture files per category, in play order.
type Manifest struct {
	Dir    string
	Frames [character.CategoryCount][]string
}

type rawManifest struct {
	Dir        string              `yaml:"dir"`
	Categories map[string][]string `yaml:"categories"`
}

// Parse decodes a manifest. Every category must be listed with at least
// one texture, and unknown category names are rejected.
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m := &Manifest{Dir: raw.Dir}
	for name, files := range raw.Categories {
		c, err := character.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("parse manifest: category %s lists no textures", name)
		}
		m.Frames[c] = files
	}

	for c := character.Category(0); c < character.CategoryCount; c++ {
		if len(m.Frames[c]) == 0 {
			return nil, fmt.Errorf("parse manifest: category %s is missing", c)
		}
	}
	return m, nil
}

// Paths returns the full texture paths of c.
func (m *Manifest) Paths(c character.Category) []string {
	out := make([]string, len(m.Frames[c]))
	for i, f := range m.Frames[c] {
		out[i] = path.Join(m.Dir, f)
	}
	return out
}

// Clips pairs every category's texture count with its divisor. Categories
// missing from divisors use fallback.
func (m *Manifest) Clips(divisors map[character.Category]int, fallback int) character.Clips {
	var clips character.Clips
	for c := range clips {
		d, ok := divisors[character.Category(c)]
		if !ok {
			d = fallback
		}
		clips[c] = character.Clip{Frames: len(m.Frames[c]), Divisor: d}
	}
	return clips
}
