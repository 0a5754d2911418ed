package gofigure

type circleEngine struct{}

func (circleEngine) baseLayout(*Schema) []Point {
	return []Point{{0, 0}}
}

func (circleEngine) layout(s *Schema, coords map[string]Point) []Primitive {
	names := s.pointNames()
	pal := paletteFor(ShapeCircle)
	r := positive(s.Rayon, defaultRadius)

	center := Point{}
	if len(names) > 0 {
		if p, ok := coords[names[0]]; ok {
			center = p
		}
	}

	prims := []Primitive{
		&CirclePrimitive{
			Center: center,
			Radius: r,
			Stroke: solidStroke(pal.edge, 2),
			Fill:   pal.fill,
		},
	}

	// Dashed radius to the right with its measure.
	right := add(center, Point{X: r})
	prims = append(prims,
		&LinePrimitive{From: center, To: right, Stroke: dashedStroke(ColorGray, 1, 4, 3)},
		&TextPrimitive{
			At:     add(center, Point{X: r / 2, Y: 0.25}),
			Text:   "r = " + formatFloat(r),
			Size:   annotationFont,
			Color:  ColorBlack,
			Anchor: AnchorMiddle,
		},
	)

	if s.ShowDiameter {
		left := add(center, Point{X: -r})
		prims = append(prims,
			&LinePrimitive{From: left, To: right, Stroke: dashedStroke(ColorBlue, 1, 2, 3)},
			&CirclePrimitive{Center: left, Radius: pointDotRadius * 0.8, Fill: ColorBlue, Stroke: solidStroke(ColorBlue, 1)},
			&CirclePrimitive{Center: right, Radius: pointDotRadius * 0.8, Fill: ColorBlue, Stroke: solidStroke(ColorBlue, 1)},
			&TextPrimitive{
				At:     add(center, Point{X: 0, Y: -0.35}),
				Text:   "d = " + formatFloat(2*r),
				Size:   annotationFont,
				Color:  ColorBlue,
				Anchor: AnchorMiddle,
			},
		)
	}

	prims = append(prims, pointMarkers(s, coords, names)...)
	return prims
}
