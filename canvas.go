package gofigure

import "math"

// titleBand is the vertical space reserved at the top of the canvas for the
// figure title.
const titleBand = 30.0

// canvasTransform maps drawing units onto the output pixel canvas: uniform
// scale, centered, with the y axis flipped so drawing coordinates grow
// upward while SVG coordinates grow downward.
type canvasTransform struct {
	scale   float64
	offsetX float64
	offsetY float64
	width   int
	height  int
}

// newCanvasTransform fits the primitive bounds into a width x height canvas
// with the given margin on every side. Degenerate bounds (a single point, an
// empty figure) get a unit extent so the transform stays finite.
func newCanvasTransform(prims []Primitive, width, height int, margin float64) canvasTransform {
	minX, minY, maxX, maxY := primitiveBounds(prims)
	dx := maxX - minX
	dy := maxY - minY
	if dx < 1e-9 {
		dx = 1
		minX -= 0.5
	}
	if dy < 1e-9 {
		dy = 1
		minY -= 0.5
	}

	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin - titleBand
	scale := math.Min(availW/dx, availH/dy)

	// Center the figure in the available area below the title band.
	offsetX := margin + (availW-dx*scale)/2 - minX*scale
	offsetY := titleBand + margin + (availH-dy*scale)/2 + (minY+dy)*scale

	return canvasTransform{
		scale:   scale,
		offsetX: offsetX,
		offsetY: offsetY,
		width:   width,
		height:  height,
	}
}

// apply converts a drawing-unit point to canvas pixels.
func (t canvasTransform) apply(p Point) (float64, float64) {
	return t.offsetX + p.X*t.scale, t.offsetY - p.Y*t.scale
}

// applyInt converts a point to rounded integer pixel coordinates.
func (t canvasTransform) applyInt(p Point) (int, int) {
	x, y := t.apply(p)
	return int(math.Round(x)), int(math.Round(y))
}

// length converts a drawing-unit distance to pixels.
func (t canvasTransform) length(v float64) float64 {
	return v * t.scale
}

// primitiveBounds computes the drawing-unit bounding box over all primitives.
// Text positions count as points so labels near an edge are not clipped.
func primitiveBounds(prims []Primitive) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	for _, prim := range prims {
		switch v := prim.(type) {
		case *LinePrimitive:
			grow(v.From)
			grow(v.To)
		case *PolylinePrimitive:
			for _, p := range v.Points {
				grow(p)
			}
		case *PolygonPrimitive:
			for _, p := range v.Points {
				grow(p)
			}
		case *CirclePrimitive:
			grow(Point{X: v.Center.X - v.Radius, Y: v.Center.Y - v.Radius})
			grow(Point{X: v.Center.X + v.Radius, Y: v.Center.Y + v.Radius})
		case *ArcPrimitive:
			grow(Point{X: v.Center.X - v.Radius, Y: v.Center.Y - v.Radius})
			grow(Point{X: v.Center.X + v.Radius, Y: v.Center.Y + v.Radius})
		case *TextPrimitive:
			grow(v.At)
		}
	}

	if math.IsInf(minX, 1) {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}
