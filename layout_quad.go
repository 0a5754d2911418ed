package gofigure

import "math"

// Quadrilateral engines. Each baseLayout derives the four vertices from the
// schema's scalar parameters; each layout draws the outline plus the
// decorations the family carries by convention (right angles for the
// rectangle, equal ticks for the square, parallel chevrons for the
// parallelogram and trapezoids).

// --- rectangle ---

type rectangleEngine struct{}

func (rectangleEngine) baseLayout(s *Schema) []Point {
	l := positive(s.Longueur, defaultLongueur)
	w := positive(s.Largeur, defaultLargeur)
	return []Point{{0, w}, {0, 0}, {l, 0}, {l, w}}
}

func (rectangleEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := quadNames(s)
	prims := outlinePrims(s, coords, names)
	prims = append(prims, cornerRightAngles(coords, names)...)

	l := positive(s.Longueur, defaultLongueur)
	w := positive(s.Largeur, defaultLargeur)
	if a, b, ok := edge(coords, names, 1, 2); ok { // bottom
		prims = append(prims, lengthLabel(a, b, formatFloat(l)+" cm", -lengthLabelOffset)...)
	}
	if a, b, ok := edge(coords, names, 0, 1); ok { // left
		prims = append(prims, lengthLabel(a, b, formatFloat(w)+" cm", -lengthLabelOffset)...)
	}
	return prims
}

// --- square ---

type squareEngine struct{}

func (squareEngine) baseLayout(s *Schema) []Point {
	c := positive(s.Cote, defaultCote)
	return []Point{{0, c}, {0, 0}, {c, 0}, {c, c}}
}

func (squareEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := quadNames(s)
	prims := outlinePrims(s, coords, names)
	prims = append(prims, cornerRightAngles(coords, names)...)

	// All four sides carry the same single tick.
	for i := 0; i < 4; i++ {
		if a, b, ok := edge(coords, names, i, (i+1)%4); ok {
			prims = append(prims, equalTicks(a, b, 1)...)
		}
	}
	c := positive(s.Cote, defaultCote)
	if a, b, ok := edge(coords, names, 1, 2); ok {
		prims = append(prims, lengthLabel(a, b, formatFloat(c)+" cm", -lengthLabelOffset)...)
	}
	return prims
}

// --- rhombus ---

type rhombusEngine struct{}

func (rhombusEngine) baseLayout(s *Schema) []Point {
	c := positive(s.Cote, defaultCote)
	rad := clampAngleDeg(s.Angle) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return []Point{
		{0, 0},
		{c * cos, c * sin},
		{c * (1 + cos), c * sin},
		{c, 0},
	}
}

func (rhombusEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := quadNames(s)
	prims := outlinePrims(s, coords, names)

	for i := 0; i < 4; i++ {
		if a, b, ok := edge(coords, names, i, (i+1)%4); ok {
			prims = append(prims, equalTicks(a, b, 1)...)
		}
	}
	c := positive(s.Cote, defaultCote)
	if a, b, ok := edge(coords, names, 0, 1); ok {
		prims = append(prims, lengthLabel(a, b, formatFloat(c)+" cm", lengthLabelOffset)...)
	}
	return prims
}

// --- parallelogram ---

type parallelogramEngine struct{}

func (parallelogramEngine) baseLayout(s *Schema) []Point {
	b := positive(s.Base, defaultBase)
	c := positive(s.Cote, defaultSide)
	rad := clampAngleDeg(s.Angle) * math.Pi / 180
	dx, dy := c*math.Cos(rad), c*math.Sin(rad)
	return []Point{
		{0, 0},
		{b, 0},
		{b + dx, dy},
		{dx, dy},
	}
}

func (parallelogramEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := quadNames(s)
	prims := outlinePrims(s, coords, names)

	// AB || DC with one chevron, AD || BC with two; matching tick counts.
	if a, b, ok := edge(coords, names, 0, 1); ok {
		prims = append(prims, parallelMark(a, b, 1)...)
		prims = append(prims, equalTicks(a, b, 1)...)
	}
	if a, b, ok := edge(coords, names, 3, 2); ok {
		prims = append(prims, parallelMark(a, b, 1)...)
		prims = append(prims, equalTicks(a, b, 1)...)
	}
	if a, b, ok := edge(coords, names, 0, 3); ok {
		prims = append(prims, parallelMark(a, b, 2)...)
		prims = append(prims, equalTicks(a, b, 2)...)
	}
	if a, b, ok := edge(coords, names, 1, 2); ok {
		prims = append(prims, parallelMark(a, b, 2)...)
		prims = append(prims, equalTicks(a, b, 2)...)
	}

	base := positive(s.Base, defaultBase)
	cote := positive(s.Cote, defaultSide)
	if a, b, ok := edge(coords, names, 0, 1); ok {
		prims = append(prims, lengthLabel(a, b, formatFloat(base)+" cm", -lengthLabelOffset)...)
	}
	if a, b, ok := edge(coords, names, 0, 3); ok {
		prims = append(prims, lengthLabel(a, b, formatFloat(cote)+" cm", lengthLabelOffset)...)
	}
	return prims
}

// --- trapezoids ---

type trapezoidEngine struct{}

func (trapezoidEngine) baseLayout(s *Schema) []Point {
	g := positive(s.BaseGrande, defaultBaseGrande)
	p := positive(s.BasePetite, defaultBasePetite)
	h := positive(s.Hauteur, defaultHauteur)
	d := positive(s.Decalage, defaultDecalage)
	return []Point{{0, 0}, {g, 0}, {d + p, h}, {d, h}}
}

func (trapezoidEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := quadNames(s)
	prims := outlinePrims(s, coords, names)
	prims = append(prims, trapezoidBaseMarks(s, coords, names)...)

	// Dashed height between the bases with its label.
	h := positive(s.Hauteur, defaultHauteur)
	if a, ok1 := coords[names[0]]; ok1 {
		if d, ok2 := coords[names[3]]; ok2 {
			x := (a.X + d.X) / 2
			prims = append(prims,
				&LinePrimitive{From: Point{X: x, Y: a.Y}, To: Point{X: x, Y: d.Y}, Stroke: dashedStroke(ColorGray, 1, 2, 3)},
				&TextPrimitive{
					At:     Point{X: x - 0.3, Y: (a.Y + d.Y) / 2},
					Text:   "h = " + formatFloat(h),
					Size:   annotationFont,
					Color:  ColorBlack,
					Anchor: AnchorMiddle,
				},
			)
		}
	}
	return prims
}

type rightTrapezoidEngine struct{}

func (rightTrapezoidEngine) baseLayout(s *Schema) []Point {
	g := positive(s.BaseGrande, defaultBaseGrande)
	p := positive(s.BasePetite, defaultBasePetite)
	h := positive(s.Hauteur, defaultHauteur)
	// The right-angle side is vertical at x = 0.
	return []Point{{0, 0}, {g, 0}, {p, h}, {0, h}}
}

func (rightTrapezoidEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := quadNames(s)
	prims := outlinePrims(s, coords, names)
	prims = append(prims, trapezoidBaseMarks(s, coords, names)...)

	// Right angles where the vertical side meets both bases.
	if v, ok := coords[names[0]]; ok {
		adj1, ok1 := coords[names[1]]
		adj2, ok2 := coords[names[3]]
		if ok1 && ok2 {
			prims = append(prims, rightAngleMarker(v, adj1, adj2, rightAngleSize*0.7)...)
		}
	}
	if v, ok := coords[names[3]]; ok {
		adj1, ok1 := coords[names[0]]
		adj2, ok2 := coords[names[2]]
		if ok1 && ok2 {
			prims = append(prims, rightAngleMarker(v, adj1, adj2, rightAngleSize*0.7)...)
		}
	}

	h := positive(s.Hauteur, defaultHauteur)
	if a, b, ok := edge(coords, names, 0, 3); ok {
		prims = append(prims, lengthLabel(a, b, formatFloat(h)+" cm", -lengthLabelOffset)...)
	}
	return prims
}

type isoscelesTrapezoidEngine struct{}

func (isoscelesTrapezoidEngine) baseLayout(s *Schema) []Point {
	g := positive(s.BaseGrande, defaultBaseGrande)
	p := positive(s.BasePetite, defaultBasePetite)
	h := positive(s.Hauteur, defaultHauteur)
	d := (g - p) / 2
	return []Point{{0, 0}, {g, 0}, {d + p, h}, {d, h}}
}

func (isoscelesTrapezoidEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := quadNames(s)
	prims := outlinePrims(s, coords, names)
	prims = append(prims, trapezoidBaseMarks(s, coords, names)...)

	// The two legs are equal.
	if a, b, ok := edge(coords, names, 0, 3); ok {
		prims = append(prims, equalTicks(a, b, 1)...)
	}
	if a, b, ok := edge(coords, names, 1, 2); ok {
		prims = append(prims, equalTicks(a, b, 1)...)
	}
	return prims
}

// trapezoidBaseMarks draws the parallel chevrons on both bases and their
// length labels.
func trapezoidBaseMarks(s *Schema, coords map[string]Point, names []string) []Primitive {
	var prims []Primitive
	g := positive(s.BaseGrande, defaultBaseGrande)
	p := positive(s.BasePetite, defaultBasePetite)
	if a, b, ok := edge(coords, names, 0, 1); ok {
		prims = append(prims, parallelMark(a, b, 1)...)
		prims = append(prims, lengthLabel(a, b, formatFloat(g)+" cm", -lengthLabelOffset)...)
	}
	if a, b, ok := edge(coords, names, 3, 2); ok {
		prims = append(prims, parallelMark(a, b, 1)...)
		prims = append(prims, lengthLabel(a, b, formatFloat(p)+" cm", lengthLabelOffset)...)
	}
	return prims
}

// --- shared quad helpers ---

// edge fetches the coordinates of the i-th and j-th named points.
func edge(coords map[string]Point, names []string, i, j int) (Point, Point, bool) {
	if i >= len(names) || j >= len(names) {
		return Point{}, Point{}, false
	}
	a, okA := coords[names[i]]
	b, okB := coords[names[j]]
	return a, b, okA && okB
}

// cornerRightAngles marks every corner of a right-angled quadrilateral.
func cornerRightAngles(coords map[string]Point, names []string) []Primitive {
	if len(names) < 4 {
		return nil
	}
	var prims []Primitive
	for i := 0; i < 4; i++ {
		v, ok := coords[names[i]]
		prev, okP := coords[names[(i+3)%4]]
		next, okN := coords[names[(i+1)%4]]
		if !ok || !okP || !okN {
			continue
		}
		prims = append(prims, rightAngleMarker(v, prev, next, rightAngleSize*0.7)...)
	}
	return prims
}
