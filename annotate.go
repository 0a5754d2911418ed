package gofigure

import (
	"math"
)

// Annotation sizing in drawing units. Figures span roughly 4-6 units, so
// these keep decorations visible without crowding the geometry.
const (
	lengthLabelOffset = 0.4
	rightAngleSize    = 0.3
	tickHalfLength    = 0.15
	tickSpacing       = 0.12
	chevronDepth      = 0.18
	chevronHalfWidth  = 0.12
	bisectorLength    = 2.0
	mediatriceLength  = 3.0
	pointDotRadius    = 0.07
	labelFontSize     = 13
	annotationFont    = 11
)

// Annotate produces the decoration primitives requested by the schema:
// segment length labels, right-angle markers, equal ticks, parallel and
// perpendicular marks, medians, heights, bisectors and perpendicular
// bisectors. Every helper is a pure function of the resolved coordinates, so
// annotations are independent of rendering order and idempotent. Dangling
// point references are skipped; Validate reports them separately.
func Annotate(s *Schema, coords map[string]Point) []Primitive {
	var prims []Primitive

	look := func(name string) (Point, bool) {
		p, ok := coords[name]
		return p, ok
	}

	for _, seg := range s.Segments {
		a, okA := look(seg.From)
		b, okB := look(seg.To)
		if !okA || !okB {
			continue
		}
		prims = append(prims, &LinePrimitive{From: a, To: b, Stroke: solidStroke(ColorBlue, 2)})
		if seg.HasLength {
			prims = append(prims, lengthLabel(a, b, formatFloat(seg.Length)+" cm", lengthLabelOffset)...)
		}
	}

	base := s.pointNames()
	for _, a := range s.Angles {
		if !a.RightAngle {
			continue
		}
		v, ok := look(a.Vertex)
		if !ok {
			continue
		}
		adj := adjacentPoints(a.Vertex, base, coords)
		if len(adj) < 2 {
			continue
		}
		prims = append(prims, rightAngleMarker(v, adj[0], adj[1], rightAngleSize)...)
	}

	for i, group := range s.Egaux {
		marks := i + 1 // tick count distinguishes groups in monochrome print
		for _, e := range group {
			a, okA := look(e.From)
			b, okB := look(e.To)
			if !okA || !okB {
				continue
			}
			prims = append(prims, equalTicks(a, b, marks)...)
		}
	}

	for i, group := range s.Paralleles {
		chevrons := i + 1
		for _, e := range group {
			a, okA := look(e.From)
			b, okB := look(e.To)
			if !okA || !okB {
				continue
			}
			prims = append(prims, parallelMark(a, b, chevrons)...)
		}
	}

	for _, group := range s.Perpendiculaires {
		if len(group) < 2 {
			continue
		}
		a1, ok1 := look(group[0].From)
		a2, ok2 := look(group[0].To)
		b1, ok3 := look(group[1].From)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		// Glyph at the midpoint of the first segment, oriented by both
		// segment directions.
		m := Midpoint(a1, a2)
		prims = append(prims, rightAngleMarker(m, a1, b1, rightAngleSize*0.7)...)
	}

	for _, t := range s.Hauteurs {
		v, okV := look(t.Vertex)
		a, okA := look(t.SideA)
		b, okB := look(t.SideB)
		if !okV || !okA || !okB {
			continue
		}
		prims = append(prims, heightLine(v, a, b)...)
	}

	for _, t := range s.Medianes {
		v, okV := look(t.Vertex)
		a, okA := look(t.SideA)
		b, okB := look(t.SideB)
		if !okV || !okA || !okB {
			continue
		}
		prims = append(prims, medianLine(v, a, b)...)
	}

	for _, t := range s.Bissectrices {
		v, okV := look(t.Vertex)
		a, okA := look(t.SideA)
		b, okB := look(t.SideB)
		if !okV || !okA || !okB {
			continue
		}
		prims = append(prims, bisectorLine(v, a, b)...)
	}

	for _, e := range s.Mediatrices {
		a, okA := look(e.From)
		b, okB := look(e.To)
		if !okA || !okB {
			continue
		}
		prims = append(prims, perpendicularBisector(a, b)...)
	}

	return prims
}

// adjacentPoints returns the coordinates of up to two base points other than
// vertex, the neighbors used to orient an angle marker.
func adjacentPoints(vertex string, base []string, coords map[string]Point) []Point {
	var adj []Point
	for _, name := range base {
		if name == vertex {
			continue
		}
		if p, ok := coords[name]; ok {
			adj = append(adj, p)
			if len(adj) == 2 {
				break
			}
		}
	}
	return adj
}

// lengthLabel places a text label at the segment midpoint, offset
// perpendicular to the segment so it never sits on the line itself.
func lengthLabel(a, b Point, text string, offset float64) []Primitive {
	mid := Midpoint(a, b)
	d := sub(b, a)
	pos := add(mid, Point{Y: offset})
	if norm(d) > 0 {
		pos = add(mid, scale(unit(perp(d)), offset))
	}
	return []Primitive{&TextPrimitive{
		At:     pos,
		Text:   text,
		Size:   annotationFont,
		Color:  ColorBlack,
		Anchor: AnchorMiddle,
	}}
}

// rightAngleMarker draws the small square at vertex oriented along the two
// incident edges toward p1 and p2.
func rightAngleMarker(vertex, p1, p2 Point, size float64) []Primitive {
	u1 := unit(sub(p1, vertex))
	u2 := unit(sub(p2, vertex))
	if norm(u1) == 0 || norm(u2) == 0 {
		return nil
	}
	v1 := scale(u1, size)
	v2 := scale(u2, size)
	corner := add(add(vertex, v1), v2)
	return []Primitive{&PolylinePrimitive{
		Points: []Point{add(vertex, v1), corner, add(vertex, v2)},
		Stroke: solidStroke(ColorBlack, 1),
	}}
}

// equalTicks draws marks short perpendicular ticks centered on the segment
// midpoint, one per equality group index.
func equalTicks(a, b Point, marks int) []Primitive {
	d := sub(b, a)
	if norm(d) == 0 || marks < 1 {
		return nil
	}
	du := unit(d)
	pu := unit(perp(d))
	mid := Midpoint(a, b)

	var prims []Primitive
	for i := 0; i < marks; i++ {
		offset := (float64(i) - float64(marks-1)/2) * tickSpacing
		c := add(mid, scale(du, offset))
		prims = append(prims, &LinePrimitive{
			From:   add(c, scale(pu, -tickHalfLength)),
			To:     add(c, scale(pu, tickHalfLength)),
			Stroke: solidStroke(ColorBlack, 2),
		})
	}
	return prims
}

// parallelMark draws chevrons on a segment pointing along its direction.
// Edges in the same parallel group share a chevron count.
func parallelMark(a, b Point, chevrons int) []Primitive {
	d := sub(b, a)
	if norm(d) == 0 || chevrons < 1 {
		return nil
	}
	du := unit(d)
	pu := unit(perp(d))
	mid := Midpoint(a, b)

	var prims []Primitive
	for i := 0; i < chevrons; i++ {
		offset := (float64(i) - float64(chevrons-1)/2) * tickSpacing * 1.5
		tip := add(mid, scale(du, offset+chevronDepth/2))
		back := add(tip, scale(du, -chevronDepth))
		prims = append(prims, &PolylinePrimitive{
			Points: []Point{
				add(back, scale(pu, chevronHalfWidth)),
				tip,
				add(back, scale(pu, -chevronHalfWidth)),
			},
			Stroke: solidStroke(ColorBlack, 1.5),
		})
	}
	return prims
}

// heightLine draws the altitude from vertex to the line through a and b:
// dashed segment to the foot, a perpendicular glyph at the foot, and an "h"
// label halfway down.
func heightLine(vertex, a, b Point) []Primitive {
	foot, t := project(vertex, a, b)
	if foot == vertex {
		return nil
	}
	prims := []Primitive{&LinePrimitive{
		From:   vertex,
		To:     foot,
		Stroke: dashedStroke(ColorGreen, 1.5),
	}}
	// Orient the foot glyph toward the farther base endpoint.
	toward := b
	if t > 0.5 {
		toward = a
	}
	prims = append(prims, rightAngleMarker(foot, vertex, toward, rightAngleSize*0.5)...)
	mid := Midpoint(vertex, foot)
	prims = append(prims, &TextPrimitive{
		At:     add(mid, Point{X: 0.2}),
		Text:   "h",
		Size:   annotationFont,
		Bold:   true,
		Color:  ColorGreen,
		Anchor: AnchorMiddle,
	})
	return prims
}

// medianLine draws the median from vertex to the midpoint of the opposite
// side, marks the midpoint and the two equal half-segments, and labels it.
func medianLine(vertex, a, b Point) []Primitive {
	mid := Midpoint(a, b)
	prims := []Primitive{
		&LinePrimitive{From: vertex, To: mid, Stroke: dashedStroke(ColorOrange, 1.5, 8, 3, 2, 3)},
		&CirclePrimitive{Center: mid, Radius: pointDotRadius * 0.7, Fill: ColorOrange, Stroke: solidStroke(ColorOrange, 1)},
	}
	prims = append(prims, equalTicks(a, mid, 1)...)
	prims = append(prims, equalTicks(mid, b, 1)...)
	label := Midpoint(vertex, mid)
	prims = append(prims, &TextPrimitive{
		At:     add(label, Point{X: 0.2}),
		Text:   "m",
		Size:   annotationFont,
		Bold:   true,
		Color:  ColorOrange,
		Anchor: AnchorMiddle,
	})
	return prims
}

// bisectorLine draws the angle bisector at vertex between the directions of
// p1 and p2, with the double arc marking equal angles.
func bisectorLine(vertex, p1, p2 Point) []Primitive {
	u1 := unit(sub(p1, vertex))
	u2 := unit(sub(p2, vertex))
	dir := unit(add(u1, u2))
	if norm(u1) == 0 || norm(u2) == 0 || norm(dir) == 0 {
		return nil
	}
	end := add(vertex, scale(dir, bisectorLength))

	a1 := math.Atan2(u1.Y, u1.X)
	a2 := math.Atan2(u2.Y, u2.X)
	if a2 < a1 {
		a1, a2 = a2, a1
	}

	prims := []Primitive{
		&LinePrimitive{From: vertex, To: end, Stroke: dashedStroke(ColorPurple, 1.5, 2, 3)},
		&ArcPrimitive{Center: vertex, Radius: 0.28, StartAngle: a1, EndAngle: a2, Stroke: solidStroke(ColorPurple, 1)},
		&ArcPrimitive{Center: vertex, Radius: 0.4, StartAngle: a1, EndAngle: a2, Stroke: solidStroke(ColorPurple, 1)},
	}
	label := add(vertex, scale(dir, bisectorLength*0.6))
	prims = append(prims, &TextPrimitive{
		At:     add(label, Point{X: 0.1}),
		Text:   "b",
		Size:   annotationFont,
		Bold:   true,
		Color:  ColorPurple,
		Anchor: AnchorMiddle,
	})
	return prims
}

// perpendicularBisector draws the mediatrice of segment ab: perpendicular
// line through the midpoint, midpoint dot, perpendicular glyph and equal
// ticks on both halves.
func perpendicularBisector(a, b Point) []Primitive {
	d := sub(b, a)
	if norm(d) == 0 {
		return nil
	}
	pu := unit(perp(d))
	mid := Midpoint(a, b)
	end1 := add(mid, scale(pu, mediatriceLength/2))
	end2 := add(mid, scale(pu, -mediatriceLength/2))

	prims := []Primitive{
		&LinePrimitive{From: end1, To: end2, Stroke: dashedStroke(ColorRed, 1.5, 6, 2, 2, 2)},
		&CirclePrimitive{Center: mid, Radius: pointDotRadius * 0.8, Fill: ColorRed, Stroke: solidStroke(ColorRed, 1)},
	}
	prims = append(prims, rightAngleMarker(mid, a, end1, rightAngleSize*0.5)...)
	prims = append(prims, equalTicks(a, mid, 1)...)
	prims = append(prims, equalTicks(mid, b, 1)...)
	prims = append(prims, &TextPrimitive{
		At:     add(mid, scale(pu, mediatriceLength*0.3)),
		Text:   "⊥",
		Size:   annotationFont + 1,
		Bold:   true,
		Color:  ColorRed,
		Anchor: AnchorMiddle,
	})
	return prims
}
