package gofigure

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// serializeSVG turns the primitive list into a complete standalone SVG
// document: white background, centered title, then the primitives in emission
// order. Output is deterministic for a given input.
func serializeSVG(title string, prims []Primitive, width, height int, margin float64) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	t := newCanvasTransform(prims, width, height, margin)

	canvas.Rect(0, 0, width, height, `fill="#ffffff"`)
	if title != "" {
		canvas.Text(width/2, 20, title,
			`font-size="16px"`, `font-weight="bold"`, `text-anchor="middle"`, `fill="#000000"`, fontFamilyAttr)
	}

	for _, prim := range prims {
		writePrimitive(canvas, t, prim)
	}

	canvas.End()
	return buf.Bytes()
}

// fontFamilyAttr keeps SVG text consistent with the rasterizer's embedded
// faces.
const fontFamilyAttr = `font-family="sans-serif"`

func writePrimitive(canvas *svg.SVG, t canvasTransform, prim Primitive) {
	switch v := prim.(type) {
	case *LinePrimitive:
		x1, y1 := t.applyInt(v.From)
		x2, y2 := t.applyInt(v.To)
		canvas.Line(x1, y1, x2, y2, strokeAttrs(v.Stroke))
	case *PolylinePrimitive:
		xs, ys := pixelCoords(t, v.Points)
		if len(xs) < 2 {
			return
		}
		canvas.Polyline(xs, ys, strokeAttrs(v.Stroke), `fill="none"`)
	case *PolygonPrimitive:
		xs, ys := pixelCoords(t, v.Points)
		if len(xs) < 3 {
			return
		}
		canvas.Polygon(xs, ys, strokeAttrs(v.Stroke), fillAttrs(v.Fill))
	case *CirclePrimitive:
		cx, cy := t.applyInt(v.Center)
		r := int(math.Round(t.length(v.Radius)))
		if r < 1 {
			r = 1
		}
		canvas.Circle(cx, cy, r, strokeAttrs(v.Stroke), fillAttrs(v.Fill))
	case *ArcPrimitive:
		xs, ys := pixelCoords(t, sampleArc(v))
		if len(xs) < 2 {
			return
		}
		canvas.Polyline(xs, ys, strokeAttrs(v.Stroke), `fill="none"`)
	case *TextPrimitive:
		x, y := t.applyInt(v.At)
		attrs := []string{
			fmt.Sprintf(`font-size="%spx"`, formatFloat(v.Size)),
			fmt.Sprintf(`fill="%s"`, v.Color.Hex()),
			fmt.Sprintf(`text-anchor="%s"`, string(v.Anchor)),
			fontFamilyAttr,
		}
		if v.Bold {
			attrs = append(attrs, `font-weight="bold"`)
		}
		canvas.Text(x, y, v.Text, attrs...)
	}
}

// sampleArc flattens an arc into points at 5-degree steps.
func sampleArc(a *ArcPrimitive) []Point {
	start, end := a.StartAngle, a.EndAngle
	if end < start {
		end += 2 * math.Pi
	}
	steps := int(math.Ceil((end - start) / (5 * math.Pi / 180)))
	if steps < 2 {
		steps = 2
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		ang := start + (end-start)*float64(i)/float64(steps)
		pts = append(pts, Point{
			X: a.Center.X + a.Radius*math.Cos(ang),
			Y: a.Center.Y + a.Radius*math.Sin(ang),
		})
	}
	return pts
}

func pixelCoords(t canvasTransform, pts []Point) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = t.applyInt(p)
	}
	return xs, ys
}

// strokeAttrs renders a Stroke as SVG presentation attributes. Attribute form
// is used throughout so downstream SVG consumers parse styling natively.
func strokeAttrs(st Stroke) string {
	parts := []string{
		fmt.Sprintf(`stroke="%s"`, st.Color.Hex()),
		fmt.Sprintf(`stroke-width="%s"`, formatFloat(st.Width)),
	}
	if st.Color.Opacity < 1 {
		parts = append(parts, fmt.Sprintf(`stroke-opacity="%s"`, formatFloat(st.Color.Opacity)))
	}
	if len(st.Dash) > 0 {
		ds := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			ds[i] = strconv.Itoa(d)
		}
		parts = append(parts, fmt.Sprintf(`stroke-dasharray="%s"`, strings.Join(ds, ",")))
	}
	return strings.Join(parts, " ")
}

// fillAttrs renders a fill color, honoring translucency.
func fillAttrs(c Color) string {
	if c.Opacity <= 0 {
		return `fill="none"`
	}
	if c.Opacity < 1 {
		return fmt.Sprintf(`fill="%s" fill-opacity="%s"`, c.Hex(), formatFloat(c.Opacity))
	}
	return fmt.Sprintf(`fill="%s"`, c.Hex())
}
