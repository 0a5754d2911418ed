package gofigure

import (
	"strings"
	"testing"
)

// render a schema down to primitives.
func layoutPrims(t *testing.T, schemaJSON string) (*Schema, []Primitive) {
	t.Helper()
	s := ParseSchema([]byte(schemaJSON))
	coords := ResolveCoords(s)
	prims := Layout(s, coords)
	prims = append(prims, Annotate(s, coords)...)
	return s, prims
}

func countPrims(prims []Primitive, pt PrimitiveType) int {
	n := 0
	for _, p := range prims {
		if p.Type() == pt {
			n++
		}
	}
	return n
}

func firstPolygon(prims []Primitive) *PolygonPrimitive {
	for _, p := range prims {
		if poly, ok := p.(*PolygonPrimitive); ok {
			return poly
		}
	}
	return nil
}

func TestLayout_RectangleOutline(t *testing.T) {
	_, prims := layoutPrims(t, `{"type": "rectangle", "longueur": 6, "largeur": 4}`)
	poly := firstPolygon(prims)
	if poly == nil {
		t.Fatal("rectangle produced no polygon")
	}
	if len(poly.Points) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(poly.Points))
	}
	if area := polygonArea(poly.Points); area < 23.9 || area > 24.1 {
		t.Errorf("rectangle area %v, want 24", area)
	}
}

func TestLayout_RhombusNonDegenerate(t *testing.T) {
	_, prims := layoutPrims(t, `{"type": "losange", "cote": 4, "angle": 60}`)
	poly := firstPolygon(prims)
	if poly == nil {
		t.Fatal("losange produced no polygon")
	}
	if len(poly.Points) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(poly.Points))
	}
	if polygonArea(poly.Points) <= 0 {
		t.Error("losange collapsed to zero area")
	}
}

func TestLayout_RightTriangleAutoMarker(t *testing.T) {
	_, prims := layoutPrims(t, `{"type": "triangle_rectangle", "points": ["A", "B", "C"]}`)
	// The auto right-angle marker is a 3-point polyline.
	if countPrims(prims, PrimitivePolyline) == 0 {
		t.Error("expected a right-angle marker polyline")
	}
}

func TestLayout_ExplicitRightAngleMarker(t *testing.T) {
	_, prims := layoutPrims(t, `{
		"type": "triangle_rectangle",
		"points": ["A", "B", "C"],
		"angles": [["B", {"angle_droit": true}]]
	}`)
	if countPrims(prims, PrimitivePolyline) == 0 {
		t.Error("expected a right-angle marker at B")
	}
}

func TestLayout_CircleWithDiameter(t *testing.T) {
	_, withDia := layoutPrims(t, `{"type": "cercle", "rayon": 3, "show_diameter": true}`)
	_, without := layoutPrims(t, `{"type": "cercle", "rayon": 3}`)

	if countPrims(withDia, PrimitiveCircle) == 0 {
		t.Fatal("cercle produced no circle")
	}
	if countPrims(withDia, PrimitiveLine) <= countPrims(without, PrimitiveLine) {
		t.Error("show_diameter did not add a diameter line")
	}
}

func TestLayout_FourPointTriangle(t *testing.T) {
	// A midpoint beyond the base arity must not distort the outline.
	_, prims := layoutPrims(t, `{"type": "triangle", "points": ["A", "B", "C", "M"]}`)
	poly := firstPolygon(prims)
	if poly == nil {
		t.Fatal("triangle produced no polygon")
	}
	if len(poly.Points) != 3 {
		t.Errorf("outline has %d vertices, want 3", len(poly.Points))
	}
	// M still gets a dot marker.
	if countPrims(prims, PrimitiveCircle) < 4 {
		t.Errorf("expected 4 point dots, got %d", countPrims(prims, PrimitiveCircle))
	}
}

func TestLayout_UnknownTypePlaceholder(t *testing.T) {
	s, prims := layoutPrims(t, `{"type": "hexagone_magique"}`)
	if len(prims) == 0 {
		t.Fatal("unknown type produced nothing")
	}
	if s.Type != ShapeUnknown {
		t.Fatalf("expected unknown type, got %v", s.Type)
	}
	found := false
	for _, p := range prims {
		if txt, ok := p.(*TextPrimitive); ok && strings.Contains(txt.Text, "hexagone_magique") {
			found = true
		}
	}
	if !found {
		t.Error("placeholder does not name the unknown type")
	}
}

func TestLayout_UnknownTypeWithPoints(t *testing.T) {
	_, prims := layoutPrims(t, `{"type": "pentagone", "points": ["A", "B", "C", "D", "E"]}`)
	poly := firstPolygon(prims)
	if poly == nil {
		t.Fatal("generic polygon missing")
	}
	if len(poly.Points) != 5 {
		t.Errorf("expected 5 vertices, got %d", len(poly.Points))
	}
	if polygonArea(poly.Points) <= 0 {
		t.Error("generic polygon degenerate")
	}
}

func TestLayout_TrapezoidHeightLabel(t *testing.T) {
	_, prims := layoutPrims(t, `{"type": "trapeze", "base_grande": 6, "base_petite": 4, "hauteur": 3}`)
	found := false
	for _, p := range prims {
		if txt, ok := p.(*TextPrimitive); ok && strings.HasPrefix(txt.Text, "h = ") {
			found = true
		}
	}
	if !found {
		t.Error("trapeze missing height label")
	}
}

func TestLayout_IsoscelesTrapezeSymmetric(t *testing.T) {
	s := ParseSchema([]byte(`{"type": "trapeze_isocele", "points": ["A", "B", "C", "D"], "base_grande": 6, "base_petite": 4, "hauteur": 3}`))
	coords := ResolveCoords(s)
	legAD := Distance(coords["A"], coords["D"])
	legBC := Distance(coords["B"], coords["C"])
	if diff := legAD - legBC; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("legs differ: AD=%v BC=%v", legAD, legBC)
	}
}

func TestLayout_ZeroScalarsUseDefaults(t *testing.T) {
	for _, typ := range []string{"rectangle", "carre", "cercle", "losange", "parallelogramme", "trapeze", "trapeze_rectangle", "trapeze_isocele"} {
		_, prims := layoutPrims(t, `{"type": "`+typ+`", "longueur": 0, "largeur": -1, "cote": 0, "rayon": 0}`)
		if len(prims) == 0 {
			t.Errorf("%s with degenerate scalars produced nothing", typ)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		`{"type": "carre"}`:             "Carré",
		`{"type": "trapeze_rectangle"}`: "Trapèze Rectangle",
		`{"type": "blob"}`:              "blob (générique)",
		`{}`:                            "Figure",
	}
	for in, want := range cases {
		if got := displayName(ParseSchema([]byte(in))); got != want {
			t.Errorf("displayName(%s) = %q, want %q", in, got, want)
		}
	}
}
