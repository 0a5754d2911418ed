package gofigure

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents an RGB color with an opacity used for SVG presentation
// attributes and raster text drawing.
type Color struct {
	RGB     string  // 6-character hex string, e.g. "000000" for black
	Opacity float64 // 0.0 (transparent) to 1.0 (opaque)
}

// Predefined colors used by the shape palettes.
var (
	ColorBlack  = Color{RGB: "000000", Opacity: 1}
	ColorWhite  = Color{RGB: "FFFFFF", Opacity: 1}
	ColorRed    = Color{RGB: "FF0000", Opacity: 1}
	ColorGray   = Color{RGB: "808080", Opacity: 1}
	ColorBlue   = Color{RGB: "0000FF", Opacity: 1}
	ColorGreen  = Color{RGB: "008000", Opacity: 1}
	ColorOrange = Color{RGB: "FFA500", Opacity: 1}
	ColorPurple = Color{RGB: "800080", Opacity: 1}
)

// NewColor creates a Color from an RGB hex string. A leading "#" is stripped
// automatically; invalid input falls back to black.
func NewColor(rgb string) Color {
	rgb = strings.ToUpper(strings.TrimPrefix(rgb, "#"))
	if !isValidRGB(rgb) {
		return ColorBlack
	}
	return Color{RGB: rgb, Opacity: 1}
}

// WithOpacity returns a copy of c with the given opacity, clamped to [0, 1].
func (c Color) WithOpacity(a float64) Color {
	c.Opacity = clampFloat(a, 0, 1)
	return c
}

// Hex returns the color as an SVG attribute value, e.g. "#FF0000".
func (c Color) Hex() string {
	return "#" + c.RGB
}

// RGBA converts the color for use with image/draw and font.Drawer.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: parseHexByte(c.RGB, 0),
		G: parseHexByte(c.RGB, 2),
		B: parseHexByte(c.RGB, 4),
		A: uint8(clampFloat(c.Opacity, 0, 1) * 255),
	}
}

// isValidRGB checks that s is exactly 6 hex characters.
func isValidRGB(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// shapePalette holds the fill and edge colors for one shape family.
type shapePalette struct {
	fill Color
	edge Color
}

// palettes follows the per-family color scheme of the exercise figures.
// Fills stay translucent so annotations remain legible in print.
var palettes = map[ShapeType]shapePalette{
	ShapeTriangle:         {fill: NewColor("ADD8E6").WithOpacity(0.3), edge: NewColor("0000FF")},
	ShapeRightTriangle:    {fill: NewColor("ADD8E6").WithOpacity(0.3), edge: NewColor("0000FF")},
	ShapeRectangle:        {fill: NewColor("90EE90").WithOpacity(0.5), edge: ColorBlack},
	ShapeSquare:           {fill: NewColor("FFFFE0").WithOpacity(0.5), edge: ColorBlack},
	ShapeCircle:           {fill: NewColor("F08080").WithOpacity(0.5), edge: ColorBlack},
	ShapeRhombus:          {fill: NewColor("FFB6C1").WithOpacity(0.3), edge: NewColor("800080")},
	ShapeParallelogram:    {fill: NewColor("B0C4DE").WithOpacity(0.3), edge: NewColor("4682B4")},
	ShapeTrapezoid:        {fill: NewColor("FFA07A").WithOpacity(0.3), edge: NewColor("FF8C00")},
	ShapeRightTrapezoid:   {fill: NewColor("E0FFFF").WithOpacity(0.3), edge: NewColor("008080")},
	ShapeIsoscelesTrapeze: {fill: NewColor("E6E6FA").WithOpacity(0.3), edge: NewColor("9370DB")},
}

// paletteFor returns the palette for t, defaulting to a neutral gray scheme
// for the generic fallback.
func paletteFor(t ShapeType) shapePalette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return shapePalette{fill: NewColor("D3D3D3").WithOpacity(0.2), edge: ColorBlue}
}

// formatFloat renders a scalar the way it appears in length labels: integers
// without a decimal part, otherwise with up to two decimals.
func formatFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
