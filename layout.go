package gofigure

import (
	"fmt"
	"math"
)

// Canonical scalar defaults in drawing units / degrees. Missing or
// non-positive parameters fall back to these instead of failing.
const (
	defaultLongueur   = 6
	defaultLargeur    = 4
	defaultCote       = 4
	defaultRadius     = 3
	defaultBase       = 5
	defaultSide       = 3
	defaultBaseGrande = 6
	defaultBasePetite = 4
	defaultHauteur    = 3
	defaultDecalage   = 1
	defaultAngleDeg   = 60
)

// layoutEngine computes the base vector primitives for one shape family.
// baseLayout gives the canonical positions for the family's base points;
// layout emits the figure from the resolved coordinates. Implementations are
// pure: no shared state, no dependence on call order.
type layoutEngine interface {
	baseLayout(s *Schema) []Point
	layout(s *Schema, coords map[string]Point) []Primitive
}

var engines = map[ShapeType]layoutEngine{
	ShapeTriangle:         triangleEngine{},
	ShapeRightTriangle:    rightTriangleEngine{},
	ShapeRectangle:        rectangleEngine{},
	ShapeSquare:           squareEngine{},
	ShapeCircle:           circleEngine{},
	ShapeRhombus:          rhombusEngine{},
	ShapeParallelogram:    parallelogramEngine{},
	ShapeTrapezoid:        trapezoidEngine{},
	ShapeRightTrapezoid:   rightTrapezoidEngine{},
	ShapeIsoscelesTrapeze: isoscelesTrapezoidEngine{},
}

// engineFor returns the layout engine for a shape type, falling back to the
// generic polygon engine so the pipeline is total over all inputs.
func engineFor(t ShapeType) layoutEngine {
	if e, ok := engines[t]; ok {
		return e
	}
	return genericEngine{}
}

// displayName returns the figure title shown above the rendered shape.
func displayName(s *Schema) string {
	switch s.Type {
	case ShapeTriangle:
		return "Triangle"
	case ShapeRightTriangle:
		return "Triangle Rectangle"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeSquare:
		return "Carré"
	case ShapeCircle:
		return "Cercle"
	case ShapeRhombus:
		return "Losange"
	case ShapeParallelogram:
		return "Parallélogramme"
	case ShapeTrapezoid:
		return "Trapèze"
	case ShapeRightTrapezoid:
		return "Trapèze Rectangle"
	case ShapeIsoscelesTrapeze:
		return "Trapèze Isocèle"
	}
	if s.RawType != "" {
		return fmt.Sprintf("%s (générique)", s.RawType)
	}
	return "Figure"
}

// Layout dispatches to the family engine and returns the base figure
// primitives for a schema with resolved coordinates.
func Layout(s *Schema, coords map[string]Point) []Primitive {
	return engineFor(s.Type).layout(s, coords)
}

// --- shared helpers ---

// outlinePrims draws the closed polygon through the named points with the
// family palette, the corner dots and the point labels.
func outlinePrims(s *Schema, coords map[string]Point, names []string) []Primitive {
	pal := paletteFor(s.Type)
	pts := make([]Point, 0, len(names))
	for _, n := range names {
		if p, ok := coords[n]; ok {
			pts = append(pts, p)
		}
	}
	var prims []Primitive
	if len(pts) >= 3 {
		prims = append(prims, &PolygonPrimitive{
			Points: pts,
			Stroke: solidStroke(pal.edge, 2),
			Fill:   pal.fill,
		})
	}
	prims = append(prims, pointMarkers(s, coords, names)...)
	return prims
}

// pointMarkers draws a dot and a bold label for each named point. Points
// whose label is a coordinate string keep their name as the display text.
func pointMarkers(s *Schema, coords map[string]Point, names []string) []Primitive {
	var prims []Primitive
	for _, name := range names {
		p, ok := coords[name]
		if !ok {
			continue
		}
		text := name
		if label, ok := s.Labels[name]; ok && !looksLikeCoordinate(label) {
			text = label
		}
		prims = append(prims,
			&CirclePrimitive{Center: p, Radius: pointDotRadius, Fill: ColorRed, Stroke: solidStroke(ColorRed, 1)},
			&TextPrimitive{
				At:     add(p, Point{X: 0.25, Y: 0.25}),
				Text:   text,
				Size:   labelFontSize,
				Bold:   true,
				Color:  ColorBlack,
				Anchor: AnchorMiddle,
			},
		)
	}
	return prims
}

// quadNames returns the four base point names of a quadrilateral schema.
func quadNames(s *Schema) []string {
	names := s.pointNames()
	if len(names) > 4 {
		names = names[:4]
	}
	return names
}

// --- triangle family ---

type triangleEngine struct{}

func (triangleEngine) baseLayout(*Schema) []Point {
	return []Point{{0, 3}, {0, 0}, {4, 0}}
}

func (triangleEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := s.pointNames()
	// Only the first three points form the outline; extra declared points
	// (midpoints, feet) get markers but do not distort the polygon.
	baseNames := names
	if len(baseNames) > 3 {
		baseNames = baseNames[:3]
	}
	prims := outlinePrims(s, coords, baseNames)
	if len(names) > 3 {
		prims = append(prims, pointMarkers(s, coords, names[3:])...)
	}
	return prims
}

type rightTriangleEngine struct{}

func (rightTriangleEngine) baseLayout(*Schema) []Point {
	// Right angle at the second point, legs on the axes.
	return []Point{{0, 4}, {0, 0}, {3, 0}}
}

func (rightTriangleEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := s.pointNames()
	baseNames := names
	if len(baseNames) > 3 {
		baseNames = baseNames[:3]
	}
	prims := outlinePrims(s, coords, baseNames)
	if len(names) > 3 {
		prims = append(prims, pointMarkers(s, coords, names[3:])...)
	}

	// If the schema does not mark the right angle explicitly, mark it at
	// the conventional vertex (second point).
	marked := false
	for _, a := range s.Angles {
		if a.RightAngle {
			marked = true
			break
		}
	}
	if !marked && len(baseNames) >= 3 {
		v, okV := coords[baseNames[1]]
		p1, ok1 := coords[baseNames[0]]
		p2, ok2 := coords[baseNames[2]]
		if okV && ok1 && ok2 {
			prims = append(prims, rightAngleMarker(v, p1, p2, rightAngleSize)...)
		}
	}
	return prims
}

// --- generic fallback ---

// genericEngine renders unknown shape types: a polygon through the declared
// points when there are enough of them, otherwise a placeholder box naming
// the type, so the pipeline always yields a visible figure.
type genericEngine struct{}

func (genericEngine) baseLayout(s *Schema) []Point {
	n := len(s.Points)
	if n == 0 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: defaultRadius * math.Cos(angle), Y: defaultRadius * math.Sin(angle)}
	}
	return pts
}

func (genericEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := s.pointNames()
	if len(names) >= 3 {
		return outlinePrims(s, coords, names)
	}
	// Placeholder: dashed bounding box with the unsupported type name.
	label := s.RawType
	if label == "" {
		label = "schéma"
	}
	return []Primitive{
		&PolygonPrimitive{
			Points: []Point{{0, 0}, {4, 0}, {4, 3}, {0, 3}},
			Stroke: dashedStroke(ColorGray, 1.5),
			Fill:   ColorWhite.WithOpacity(0),
		},
		&TextPrimitive{
			At:     Point{X: 2, Y: 1.5},
			Text:   label,
			Size:   labelFontSize,
			Color:  ColorGray,
			Anchor: AnchorMiddle,
		},
	}
}
