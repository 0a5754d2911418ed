package gofigure

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// rasterize renders an SVG document to a PNG image. Shape geometry goes
// through oksvg/rasterx; text elements are drawn in a second pass with the
// embedded faces, since oksvg does not rasterize text. An error here means
// the document itself could not be processed, not a data-shape problem.
func rasterize(svgDoc []byte, fonts *FontCache) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgDoc), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	root, err := svgparser.Parse(bytes.NewReader(svgDoc), false)
	if err != nil {
		return nil, fmt.Errorf("parsing svg elements: %w", err)
	}

	w, h := docSize(root, icon)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	if err := drawTextElements(img, root, fonts); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// docSize reads the canvas size from the root svg element, falling back to
// the parsed viewbox.
func docSize(root *svgparser.Element, icon *oksvg.SvgIcon) (int, int) {
	w := attrInt(root, "width", 0)
	h := attrInt(root, "height", 0)
	if w > 0 && h > 0 {
		return w, h
	}
	vw := int(icon.ViewBox.W)
	vh := int(icon.ViewBox.H)
	if vw > 0 && vh > 0 {
		return vw, vh
	}
	return 400, 400
}

// drawTextElements draws every <text> element onto the image with the cached
// faces, honoring size, weight, fill and anchor.
func drawTextElements(img *image.RGBA, root *svgparser.Element, fonts *FontCache) error {
	for _, el := range root.FindAll("text") {
		content := strings.TrimSpace(el.Content)
		if content == "" {
			continue
		}

		x := attrFloat(el, "x", 0)
		y := attrFloat(el, "y", 0)
		size := attrFontSize(el, 12)
		bold := el.Attributes["font-weight"] == "bold"
		col := NewColor(attrOr(el, "fill", "#000000"))

		face, err := fonts.Face(size, bold)
		if err != nil {
			return err
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(col.RGBA()),
			Face: face,
		}
		dot := fixed.P(int(x), int(y))
		switch el.Attributes["text-anchor"] {
		case "middle":
			dot.X -= d.MeasureString(content) / 2
		case "end":
			dot.X -= d.MeasureString(content)
		}
		d.Dot = dot
		d.DrawString(content)
	}
	return nil
}

func attrOr(el *svgparser.Element, name, def string) string {
	if v, ok := el.Attributes[name]; ok && v != "" {
		return v
	}
	return def
}

func attrInt(el *svgparser.Element, name string, def int) int {
	v, err := strconv.Atoi(strings.TrimSuffix(el.Attributes[name], "px"))
	if err != nil {
		return def
	}
	return v
}

func attrFloat(el *svgparser.Element, name string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(el.Attributes[name], "px"), 64)
	if err != nil {
		return def
	}
	return v
}

func attrFontSize(el *svgparser.Element, def float64) float64 {
	if v := attrFloat(el, "font-size", 0); v > 0 {
		return v
	}
	return def
}
