// Package leveldata parses Tiled maps into plain positioned rectangles.
// It has no dependency on ebitengine or donburi.
//
// Coordinates are converted to world space with y growing upward: a
// sprite's X, Y is its lower-left corner and y=0 is the bottom of the map.
package leveldata

import "strconv"

// Map is a parsed Tiled map.
type Map struct {
	Name   string
	Width  float64 // pixels
	Height float64 // pixels

	// Layers holds tile layers and object groups by name.
	Layers map[string]*Layer
}

// Layer is a named list of sprites.
type Layer struct {
	Name    string
	Sprites []Sprite

	// Parallax is the layer's scroll factor relative to the world.
	Parallax Factor
}

// Factor is a per-axis parallax multiplier.
type Factor struct {
	X, Y float64
}

// Sprite is one tile or object.
type Sprite struct {
	X, Y, W, H float64
	Name       string
	Properties map[string]string
}

func (s Sprite) CenterX() float64 { return s.X + s.W/2 }
func (s Sprite) CenterY() float64 { return s.Y + s.H/2 }

// String returns a property and whether it is set.
func (s Sprite) String(key string) (string, bool) {
	v, ok := s.Properties[key]
	return v, ok
}

// Int returns an integer property. Values written as floats by the editor
// are truncated.
func (s Sprite) Int(key string) (int, bool) {
	f, ok := s.Float(key)
	return int(f), ok
}

// Float returns a numeric property. A missing or malformed value reports
// false.
func (s Sprite) Float(key string) (float64, bool) {
	v, ok := s.Properties[key]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Sprites returns the sprites of a layer, or nil if the map has no such
// layer.
func (m *Map) Sprites(layer string) []Sprite {
	if l, ok := m.Layers[layer]; ok {
		return l.Sprites
	}
	return nil
}

// Parallax returns the factors of the layers prefix0 .. prefix(n-1).
// Missing layers get a factor of 1 on both axes.
func (m *Map) Parallax(prefix string, n int) []Factor {
	names := LayerNames(prefix, n)
	out := make([]Factor, n)
	for i, name := range names {
		out[i] = Factor{X: 1, Y: 1}
		if l, ok := m.Layers[name]; ok {
			out[i] = l.Parallax
		}
	}
	return out
}

// LayerNames returns the numbered layer names prefix0 .. prefix(n-1).
func LayerNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}
	return names
}

// Door returns the sprite of the door with the given id in layer.
func (m *Map) Door(layer string, id int) (Sprite, bool) {
	for _, d := range m.Sprites(layer) {
		if doorID, ok := d.Int("id"); ok && doorID == id {
			return d, true
		}
	}
	return Sprite{}, false
}
