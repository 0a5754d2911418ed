package gofigure

import (
	"bytes"
	"strings"
	"testing"
)

func TestSerializeSVG_Deterministic(t *testing.T) {
	s := ParseSchema([]byte(`{"type": "losange", "cote": 4, "angle": 60, "egaux": [[["A", "B"], ["C", "D"]]]}`))
	render := func() []byte {
		coords := ResolveCoords(s)
		prims := Layout(s, coords)
		prims = append(prims, Annotate(s, coords)...)
		return serializeSVG(displayName(s), prims, 400, 400, 30)
	}
	a := render()
	b := render()
	if !bytes.Equal(a, b) {
		t.Error("identical input produced different SVG bytes")
	}
}

func TestSerializeSVG_Document(t *testing.T) {
	prims := []Primitive{
		&LinePrimitive{From: Point{0, 0}, To: Point{4, 0}, Stroke: dashedStroke(ColorGray, 1.5)},
		&PolygonPrimitive{
			Points: []Point{{0, 0}, {4, 0}, {2, 3}},
			Stroke: solidStroke(ColorBlue, 2),
			Fill:   NewColor("ADD8E6").WithOpacity(0.3),
		},
		&TextPrimitive{At: Point{2, 1}, Text: "A", Size: 13, Bold: true, Color: ColorBlack, Anchor: AnchorMiddle},
	}
	doc := string(serializeSVG("Triangle", prims, 400, 400, 30))

	for _, want := range []string{
		"<svg",
		"</svg>",
		"Triangle",
		`stroke-dasharray="6,4"`,
		`fill-opacity="0.3"`,
		`stroke="#0000FF"`,
		`text-anchor="middle"`,
		`font-weight="bold"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestSerializeSVG_ArcSampled(t *testing.T) {
	prims := []Primitive{
		&ArcPrimitive{Center: Point{0, 0}, Radius: 1, StartAngle: 0, EndAngle: 1.5, Stroke: solidStroke(ColorPurple, 1)},
	}
	doc := string(serializeSVG("", prims, 400, 400, 30))
	if !strings.Contains(doc, "<polyline") {
		t.Error("arc should serialize as a polyline")
	}
	if strings.Contains(doc, "<path") {
		t.Error("unexpected path element")
	}
}

func TestSerializeSVG_EmptyFigure(t *testing.T) {
	doc := string(serializeSVG("Figure", nil, 400, 400, 30))
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Error("empty figure must still be a complete document")
	}
}

func TestFillAttrs(t *testing.T) {
	if got := fillAttrs(ColorWhite.WithOpacity(0)); got != `fill="none"` {
		t.Errorf("zero opacity fill = %q", got)
	}
	if got := fillAttrs(ColorRed); got != `fill="#FF0000"` {
		t.Errorf("opaque fill = %q", got)
	}
	if got := fillAttrs(NewColor("90EE90").WithOpacity(0.5)); got != `fill="#90EE90" fill-opacity="0.5"` {
		t.Errorf("translucent fill = %q", got)
	}
}

func TestCanvasTransform_FitsAndFlips(t *testing.T) {
	prims := []Primitive{
		&PolygonPrimitive{Points: []Point{{0, 0}, {6, 0}, {6, 4}, {0, 4}}},
	}
	tr := newCanvasTransform(prims, 400, 400, 30)

	x0, y0 := tr.apply(Point{0, 0})
	x1, y1 := tr.apply(Point{6, 4})
	if x0 < 0 || y0 > 400 || x1 > 400 || y1 < 0 {
		t.Errorf("figure out of canvas: (%v,%v) (%v,%v)", x0, y0, x1, y1)
	}
	// Higher drawing y maps to a smaller pixel y.
	if y1 >= y0 {
		t.Errorf("y axis not flipped: y(0)=%v y(4)=%v", y0, y1)
	}
	// Uniform scale.
	if span := x1 - x0; span < tr.length(6)-1e-6 || span > tr.length(6)+1e-6 {
		t.Errorf("horizontal span %v, want %v", span, tr.length(6))
	}
}

func TestCanvasTransform_DegenerateBounds(t *testing.T) {
	prims := []Primitive{
		&CirclePrimitive{Center: Point{2, 2}, Radius: 0},
	}
	tr := newCanvasTransform(prims, 400, 400, 30)
	x, y := tr.apply(Point{2, 2})
	if x < 0 || x > 400 || y < 0 || y > 400 {
		t.Errorf("degenerate figure placed off canvas: (%v, %v)", x, y)
	}
}
