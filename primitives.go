package gofigure

// PrimitiveType represents the kind of a vector primitive.
type PrimitiveType int

const (
	PrimitiveLine PrimitiveType = iota
	PrimitivePolyline
	PrimitivePolygon
	PrimitiveCircle
	PrimitiveArc
	PrimitiveText
)

// Primitive is the interface all vector primitives implement. Layout engines
// and the annotation layer emit primitives; the serializer consumes them.
type Primitive interface {
	Type() PrimitiveType
}

// Stroke describes how an outline is drawn. Width is in pixels at canvas
// scale; an empty Dash means a solid line.
type Stroke struct {
	Color Color
	Width float64
	Dash  []int
}

// TextAnchor controls horizontal text placement relative to its position.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// LinePrimitive is a straight segment between two points.
type LinePrimitive struct {
	From   Point
	To     Point
	Stroke Stroke
}

func (*LinePrimitive) Type() PrimitiveType { return PrimitiveLine }

// PolylinePrimitive is an open chain of segments.
type PolylinePrimitive struct {
	Points []Point
	Stroke Stroke
}

func (*PolylinePrimitive) Type() PrimitiveType { return PrimitivePolyline }

// PolygonPrimitive is a closed outline with an optional translucent fill.
// A fill with zero opacity draws the outline only.
type PolygonPrimitive struct {
	Points []Point
	Stroke Stroke
	Fill   Color
}

func (*PolygonPrimitive) Type() PrimitiveType { return PrimitivePolygon }

// CirclePrimitive is a full circle given by center and radius.
type CirclePrimitive struct {
	Center Point
	Radius float64
	Stroke Stroke
	Fill   Color
}

func (*CirclePrimitive) Type() PrimitiveType { return PrimitiveCircle }

// ArcPrimitive is a circular arc from StartAngle to EndAngle (radians,
// counter-clockwise). Serialization samples it into a polyline.
type ArcPrimitive struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Stroke     Stroke
}

func (*ArcPrimitive) Type() PrimitiveType { return PrimitiveArc }

// TextPrimitive places a label at a point. Size is in pixels on the output
// canvas and is not subject to the figure scale, so labels stay readable
// regardless of drawing-unit extents.
type TextPrimitive struct {
	At     Point
	Text   string
	Size   float64
	Bold   bool
	Color  Color
	Anchor TextAnchor
}

func (*TextPrimitive) Type() PrimitiveType { return PrimitiveText }

// solidStroke is the common stroke for base geometry.
func solidStroke(c Color, width float64) Stroke {
	return Stroke{Color: c, Width: width}
}

// dashedStroke is used for construction lines (radius, heights, diameters).
func dashedStroke(c Color, width float64, dash ...int) Stroke {
	if len(dash) == 0 {
		dash = []int{6, 4}
	}
	return Stroke{Color: c, Width: width, Dash: dash}
}
