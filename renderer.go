package gofigure

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// RenderOptions controls canvas geometry. Zero values fall back to the
// defaults, so a partially filled struct is fine.
type RenderOptions struct {
	// Width and Height of the output canvas in pixels.
	Width  int
	Height int
	// Margin around the figure in pixels.
	Margin float64
}

// DefaultRenderOptions returns the standard 400x400 canvas configuration.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:  400,
		Height: 400,
		Margin: 30,
	}
}

// Renderer turns schema descriptions into SVG documents and raster images.
// A Renderer is safe for concurrent use.
type Renderer struct {
	opts  RenderOptions
	fonts *FontCache
}

// NewRenderer builds a renderer; a nil opts selects the defaults.
func NewRenderer(opts *RenderOptions) *Renderer {
	def := DefaultRenderOptions()
	if opts == nil {
		opts = def
	}
	o := *opts
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Margin <= 0 {
		o.Margin = def.Margin
	}
	return &Renderer{opts: o, fonts: NewFontCache()}
}

// RenderedFigure is the outcome of rendering one schema: the SVG document
// plus any validation issues found along the way. Issues are advisory; an
// SVG is always produced.
type RenderedFigure struct {
	SVG    []byte
	Issues []string
}

// RenderFigure renders a raw JSON schema description to SVG. It never fails:
// malformed input degrades to a placeholder figure with the problems listed
// in Issues.
func (r *Renderer) RenderFigure(schemaJSON []byte) *RenderedFigure {
	return r.RenderSchema(ParseSchema(schemaJSON))
}

// RenderSchema renders an already parsed schema.
func (r *Renderer) RenderSchema(s *Schema) *RenderedFigure {
	_, issues := Validate(s)
	if s == nil {
		s = &Schema{}
	}

	coords := ResolveCoords(s)
	prims := Layout(s, coords)
	prims = append(prims, Annotate(s, coords)...)

	svgDoc := serializeSVG(displayName(s), prims, r.opts.Width, r.opts.Height, r.opts.Margin)
	return &RenderedFigure{SVG: svgDoc, Issues: issues}
}

// Rasterize converts an SVG document produced by this renderer into a PNG.
func (r *Renderer) Rasterize(svgDoc []byte) ([]byte, error) {
	return rasterize(svgDoc, r.fonts)
}

// RenderEmbeddable renders a schema all the way to a data URI suitable for
// an <img> src. It returns "" only when rasterization itself fails; schema
// problems still yield a placeholder image.
func (r *Renderer) RenderEmbeddable(schemaJSON []byte) string {
	fig := r.RenderFigure(schemaJSON)
	pngData, err := r.Rasterize(fig.SVG)
	if err != nil {
		return ""
	}
	return EncodeEmbeddable(pngData)
}

// EncodeEmbeddable wraps PNG bytes in a data URI.
func EncodeEmbeddable(pngData []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
}

// schemaBlockPattern matches embedded figure descriptions inside exercise
// text. Flat JSON objects only; schema blocks do not nest.
var schemaBlockPattern = regexp.MustCompile(`\{\s*"type"\s*:\s*"schema_geometrique"[^}]*\}`)

// ReplaceSchemasInText replaces every embedded schema block in a text with an
// inline image tag. Blocks that fail to render fall back to a textual
// placeholder so the surrounding document still reads.
func (r *Renderer) ReplaceSchemasInText(text string) string {
	if text == "" {
		return text
	}
	return schemaBlockPattern.ReplaceAllStringFunc(text, func(block string) string {
		var raw map[string]any
		if err := json.Unmarshal([]byte(block), &raw); err != nil {
			return `<span style="color: red; font-style: italic;">[Schéma géométrique invalide]</span>`
		}
		// Inside a text block the shape family lives under "figure".
		if fig, ok := raw["figure"]; ok {
			raw["type"] = fig
		}

		s := SchemaFromMap(raw)
		rendered := r.RenderSchema(s)
		pngData, err := r.Rasterize(rendered.SVG)
		if err != nil {
			return schemaPlaceholder(s)
		}
		uri := EncodeEmbeddable(pngData)
		return fmt.Sprintf(`<div class="geometric-figure" style="text-align: center; margin: 15px 0;"><img src="%s" alt="Schéma géométrique" style="max-width: 400px; height: auto;"/></div>`, uri)
	})
}

// schemaPlaceholder is the textual fallback when an embedded schema cannot be
// rasterized.
func schemaPlaceholder(s *Schema) string {
	name := s.RawType
	if name == "" {
		name = "figure"
	}
	points := strings.Join(s.Points, ", ")
	return fmt.Sprintf(`<div style="text-align: center; margin: 15px 0; padding: 10px; border: 1px dashed #ccc; font-style: italic;">[Schéma: %s avec points %s]</div>`, name, points)
}
