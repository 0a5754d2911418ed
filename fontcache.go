package gofigure

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontCache parses the embedded typefaces once and caches faces per size and
// weight. Embedded fonts keep rasterized output identical across hosts; the
// cache is safe for concurrent use.
type FontCache struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

func NewFontCache() *FontCache {
	return &FontCache{faces: make(map[faceKey]font.Face)}
}

// Face returns a cached face for the given pixel size and weight.
func (c *FontCache) Face(size float64, bold bool) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	fnt, err := c.font(bold)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %gpx face: %w", size, err)
	}
	c.faces[key] = face
	return face, nil
}

func (c *FontCache) font(bold bool) (*opentype.Font, error) {
	if bold {
		if c.bold == nil {
			f, err := opentype.Parse(gobold.TTF)
			if err != nil {
				return nil, fmt.Errorf("parsing bold font: %w", err)
			}
			c.bold = f
		}
		return c.bold, nil
	}
	if c.regular == nil {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parsing regular font: %w", err)
		}
		c.regular = f
	}
	return c.regular, nil
}
