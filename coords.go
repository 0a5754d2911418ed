package gofigure

import (
	"math"
	"strconv"
	"strings"
)

// Canonical default layouts, used whenever a point has no explicit "(x,y)"
// label. The conventions follow standard exercise figures:
//
//	triangle           A(0,3) B(0,0) C(4,0)
//	triangle_rectangle A(0,4) B(0,0) C(3,0), right angle at B
//	rectangle          axis-aligned from longueur x largeur, A top-left
//	carre              axis-aligned from cote
//	losange            A at origin, sides cote, base angle at A
//	parallelogramme    A(0,0) B(base,0), top edge shifted by cote/angle
//	trapeze*           bases on y=0 and y=hauteur
//	cercle             center O at origin
//	generic            points evenly spaced on a radius-3 circle
//
// Extra points beyond the family's base arity are derived as midpoints of
// successive base edges (M on AB, N on BC, ...), then fall back to a
// deterministic diagonal position. A resolved coordinate never fails to
// exist for a declared point.

// ResolveCoords assigns a 2D position to every declared point. Explicit
// "(x,y)" labels win over canonical positions; derivation fills the rest.
// The assignment is deterministic: identical schemas resolve identically.
func ResolveCoords(s *Schema) map[string]Point {
	names := s.pointNames()
	eng := engineFor(s.Type)
	base := eng.baseLayout(s)

	coords := make(map[string]Point, len(names))
	n := len(base)
	for i, name := range names {
		if i < n {
			coords[name] = base[i]
		}
	}

	// Explicit coordinates for base points apply before derivation so that
	// derived midpoints track the moved vertices.
	for i, name := range names {
		if i >= n {
			break
		}
		if p, ok := labelCoordinate(s, name); ok {
			coords[name] = p
		}
	}

	for i := n; i < len(names); i++ {
		name := names[i]
		if p, ok := labelCoordinate(s, name); ok {
			coords[name] = p
			continue
		}
		coords[name] = derivePoint(s, names, coords, i, n)
	}

	return coords
}

// derivePoint computes a position for the extra point at index i, given the
// n base points already resolved.
func derivePoint(s *Schema, names []string, coords map[string]Point, i, n int) Point {
	if s.Type == ShapeCircle {
		// Points on the circle at 90-degree steps, matching the default
		// placement of labelled circle points.
		r := positive(s.Rayon, defaultRadius)
		angle := float64(i-1) * 90 * math.Pi / 180
		return Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	k := i - n
	if n >= 2 && k < n {
		a := coords[names[k]]
		b := coords[names[(k+1)%n]]
		return Midpoint(a, b)
	}
	// Last-resort fallback, spaced out along the diagonal so points stay
	// visible and distinct.
	return Point{X: float64(2 * i), Y: float64(2 * i)}
}

// labelCoordinate reports the explicit coordinate attached to a point via
// labels, if there is one.
func labelCoordinate(s *Schema, name string) (Point, bool) {
	label, ok := s.Labels[name]
	if !ok || !looksLikeCoordinate(label) {
		return Point{}, false
	}
	return parseCoordinate(label)
}

// looksLikeCoordinate reports whether a label is meant to be a coordinate
// pair rather than a display label.
func looksLikeCoordinate(label string) bool {
	t := strings.TrimSpace(label)
	return strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")")
}

// parseCoordinate parses a "(x,y)" string into a Point.
func parseCoordinate(label string) (Point, bool) {
	t := strings.TrimSpace(label)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")
	parts := strings.Split(t, ",")
	if len(parts) != 2 {
		return Point{}, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// positive returns v if strictly positive, otherwise the canonical default.
// Zero and negative lengths never produce degenerate geometry.
func positive(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// clampAngleDeg normalizes an angle parameter into [1, 179] degrees so a
// rhombus or parallelogram never collapses to zero area.
func clampAngleDeg(deg float64) float64 {
	if deg == 0 {
		return defaultAngleDeg
	}
	return clampFloat(deg, 1, 179)
}
