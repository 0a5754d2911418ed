package gofigure

import (
	"strings"
	"testing"
)

func annotatePrims(t *testing.T, schemaJSON string) []Primitive {
	t.Helper()
	s := ParseSchema([]byte(schemaJSON))
	return Annotate(s, ResolveCoords(s))
}

func TestAnnotate_SegmentWithLength(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "triangle",
		"points": ["A", "B", "C"],
		"segments": [["A", "B", {"longueur": 5}]]
	}`)
	if countPrims(prims, PrimitiveLine) != 1 {
		t.Fatalf("expected 1 segment line, got %d", countPrims(prims, PrimitiveLine))
	}
	found := false
	for _, p := range prims {
		if txt, ok := p.(*TextPrimitive); ok && txt.Text == "5 cm" {
			found = true
		}
	}
	if !found {
		t.Error("missing length label")
	}
}

func TestAnnotate_DanglingReferenceSkipped(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "triangle",
		"points": ["A", "B", "C"],
		"segments": [["A", "Z"]],
		"hauteurs": [["Z", "A", "B"]],
		"mediatrices": [["Q", "R"]]
	}`)
	if len(prims) != 0 {
		t.Errorf("dangling references must be skipped, got %d primitives", len(prims))
	}
}

func TestAnnotate_EqualTickCounts(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "carre",
		"points": ["A", "B", "C", "D"],
		"egaux": [[["A", "B"]], [["B", "C"]]]
	}`)
	// First group gets 1 tick, second gets 2: three tick lines total.
	if n := countPrims(prims, PrimitiveLine); n != 3 {
		t.Errorf("expected 3 tick lines, got %d", n)
	}
}

func TestAnnotate_ParallelChevrons(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "parallelogramme",
		"points": ["A", "B", "C", "D"],
		"paralleles": [[["A", "B"], ["D", "C"]]]
	}`)
	// One chevron per edge in the first group.
	if n := countPrims(prims, PrimitivePolyline); n != 2 {
		t.Errorf("expected 2 chevrons, got %d", n)
	}
}

func TestAnnotate_Height(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "triangle",
		"points": ["A", "B", "C"],
		"hauteurs": [["A", "B", "C"]]
	}`)
	if countPrims(prims, PrimitiveLine) == 0 {
		t.Fatal("height produced no line")
	}
	foundLabel := false
	for _, p := range prims {
		if txt, ok := p.(*TextPrimitive); ok && txt.Text == "h" {
			foundLabel = true
		}
	}
	if !foundLabel {
		t.Error("missing h label")
	}
}

func TestAnnotate_MedianMarksMidpoint(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "triangle",
		"points": ["A", "B", "C"],
		"medianes": [["A", "B", "C"]]
	}`)
	if countPrims(prims, PrimitiveCircle) != 1 {
		t.Errorf("expected 1 midpoint dot, got %d", countPrims(prims, PrimitiveCircle))
	}
	// Median line plus 2 equal ticks.
	if n := countPrims(prims, PrimitiveLine); n != 3 {
		t.Errorf("expected 3 lines, got %d", n)
	}
}

func TestAnnotate_BisectorArcs(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "triangle",
		"points": ["A", "B", "C"],
		"bissectrices": [["B", "A", "C"]]
	}`)
	if n := countPrims(prims, PrimitiveArc); n != 2 {
		t.Errorf("expected 2 marking arcs, got %d", n)
	}
}

func TestAnnotate_Mediatrice(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "triangle",
		"points": ["A", "B", "C"],
		"mediatrices": [["A", "B"]]
	}`)
	found := false
	for _, p := range prims {
		if txt, ok := p.(*TextPrimitive); ok && strings.Contains(txt.Text, "⊥") {
			found = true
		}
	}
	if !found {
		t.Error("mediatrice missing its glyph label")
	}
	if countPrims(prims, PrimitiveCircle) != 1 {
		t.Error("mediatrice missing midpoint dot")
	}
}

func TestAnnotate_PerpendicularPair(t *testing.T) {
	prims := annotatePrims(t, `{
		"type": "triangle_rectangle",
		"points": ["A", "B", "C"],
		"perpendiculaires": [[["B", "A"], ["B", "C"]]]
	}`)
	if countPrims(prims, PrimitivePolyline) == 0 {
		t.Error("perpendicular pair produced no glyph")
	}
}

func TestAnnotate_EmptySchema(t *testing.T) {
	if prims := annotatePrims(t, `{"type": "triangle"}`); len(prims) != 0 {
		t.Errorf("empty schema produced %d annotation primitives", len(prims))
	}
}
