package gofigure

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ShapeType identifies a supported shape family.
type ShapeType int

const (
	ShapeUnknown ShapeType = iota
	ShapeTriangle
	ShapeRightTriangle
	ShapeRectangle
	ShapeSquare
	ShapeCircle
	ShapeRhombus
	ShapeParallelogram
	ShapeTrapezoid
	ShapeRightTrapezoid
	ShapeIsoscelesTrapeze
)

// String returns the schema-level name of the shape type.
func (t ShapeType) String() string {
	switch t {
	case ShapeTriangle:
		return "triangle"
	case ShapeRightTriangle:
		return "triangle_rectangle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeSquare:
		return "carre"
	case ShapeCircle:
		return "cercle"
	case ShapeRhombus:
		return "losange"
	case ShapeParallelogram:
		return "parallelogramme"
	case ShapeTrapezoid:
		return "trapeze"
	case ShapeRightTrapezoid:
		return "trapeze_rectangle"
	case ShapeIsoscelesTrapeze:
		return "trapeze_isocele"
	}
	return "unknown"
}

// ParseShapeType maps a schema "type" string to a ShapeType. Unrecognized
// values return ShapeUnknown, which renders through the generic fallback.
func ParseShapeType(s string) ShapeType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangle":
		return ShapeTriangle
	case "triangle_rectangle":
		return ShapeRightTriangle
	case "rectangle":
		return ShapeRectangle
	case "carre", "carré":
		return ShapeSquare
	case "cercle":
		return ShapeCircle
	case "losange":
		return ShapeRhombus
	case "parallelogramme", "parallélogramme":
		return ShapeParallelogram
	case "trapeze", "trapèze":
		return ShapeTrapezoid
	case "trapeze_rectangle":
		return ShapeRightTrapezoid
	case "trapeze_isocele":
		return ShapeIsoscelesTrapeze
	}
	return ShapeUnknown
}

// arity returns the number of base points the family's canonical layout
// defines. Extra declared points are derived or defaulted by the resolver.
func (t ShapeType) arity() int {
	switch t {
	case ShapeTriangle, ShapeRightTriangle:
		return 3
	case ShapeRectangle, ShapeSquare, ShapeRhombus, ShapeParallelogram,
		ShapeTrapezoid, ShapeRightTrapezoid, ShapeIsoscelesTrapeze:
		return 4
	case ShapeCircle:
		return 1
	}
	return 0
}

// Edge names a segment by its two endpoint points.
type Edge struct {
	From string
	To   string
}

// SegmentSpec requests a drawn segment with an optional length label.
type SegmentSpec struct {
	From      string
	To        string
	Length    float64
	HasLength bool
}

// AngleSpec requests an angle decoration at a vertex.
type AngleSpec struct {
	Vertex     string
	RightAngle bool
}

// Triple names a vertex and the two endpoints of the opposite side, used by
// medians, heights and bisectors.
type Triple struct {
	Vertex string
	SideA  string
	SideB  string
}

// Schema is the parsed form of a geometric schema description. All fields are
// optional in the input; zero values fall back to canonical defaults during
// layout rather than failing.
type Schema struct {
	Type    ShapeType
	RawType string // original "type" string, kept for fallback labeling

	Points []string
	Labels map[string]string

	// Shape-specific scalar parameters (drawing units / degrees).
	Longueur   float64
	Largeur    float64
	Cote       float64
	Rayon      float64
	Base       float64
	Hauteur    float64
	BaseGrande float64
	BasePetite float64
	Angle      float64
	Decalage   float64

	Segments         []SegmentSpec
	Angles           []AngleSpec
	Egaux            [][]Edge
	Paralleles       [][]Edge
	Perpendiculaires [][]Edge
	Medianes         []Triple
	Hauteurs         []Triple
	Bissectrices     []Triple
	Mediatrices      []Edge

	ShowDiameter bool

	// parseIssues collects problems found while decoding. Validate folds
	// them into its report.
	parseIssues []string
}

// ParseSchema decodes a schema description from JSON. It never fails: any
// field that cannot be interpreted is skipped and recorded as a parse issue,
// so the renderer always has something to work with.
func ParseSchema(data []byte) *Schema {
	s := &Schema{Labels: map[string]string{}}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.parseIssues = append(s.parseIssues, fmt.Sprintf("schema is not a JSON object: %v", err))
		return s
	}
	return schemaFromMap(raw)
}

// SchemaFromMap builds a Schema from an already-decoded JSON object, the form
// the exercise-generation collaborator hands over.
func SchemaFromMap(raw map[string]any) *Schema {
	if raw == nil {
		return &Schema{Labels: map[string]string{}}
	}
	return schemaFromMap(raw)
}

func schemaFromMap(raw map[string]any) *Schema {
	s := &Schema{Labels: map[string]string{}}

	s.RawType = asString(raw["type"])
	s.Type = ParseShapeType(s.RawType)
	// "quadrilatere" dispatches through sous_type, defaulting to rectangle.
	if strings.EqualFold(strings.TrimSpace(s.RawType), "quadrilatere") {
		sub := asString(raw["sous_type"])
		s.Type = ParseShapeType(sub)
		if s.Type == ShapeUnknown {
			s.Type = ShapeRectangle
		}
	}

	if pts, ok := raw["points"].([]any); ok {
		for i, p := range pts {
			name, ok := p.(string)
			if !ok {
				s.issuef("points[%d]: expected a point name string", i)
				continue
			}
			s.Points = append(s.Points, name)
		}
	}

	if labels, ok := raw["labels"].(map[string]any); ok {
		for name, v := range labels {
			if str, ok := v.(string); ok {
				s.Labels[name] = str
			} else {
				s.issuef("labels[%s]: expected a string", name)
			}
		}
	}

	s.Longueur = asFloat(raw["longueur"])
	s.Largeur = asFloat(raw["largeur"])
	s.Cote = asFloat(raw["cote"])
	s.Rayon = asFloat(raw["rayon"])
	s.Base = asFloat(raw["base"])
	s.Hauteur = asFloat(raw["hauteur"])
	s.BaseGrande = asFloat(raw["base_grande"])
	s.BasePetite = asFloat(raw["base_petite"])
	s.Angle = asFloat(raw["angle"])
	s.Decalage = asFloat(raw["decalage"])
	s.ShowDiameter = asBool(raw["show_diameter"])

	s.Segments = s.parseSegments(raw["segments"])
	s.Angles = s.parseAngles(raw["angles"])
	s.Egaux = s.parseEdgeGroups(raw["egaux"], "egaux")
	s.Paralleles = s.parseEdgeGroups(raw["paralleles"], "paralleles")
	s.Perpendiculaires = s.parseEdgeGroups(raw["perpendiculaires"], "perpendiculaires")
	s.Medianes = s.parseTriples(raw["medianes"], "medianes")
	s.Hauteurs = s.parseTriples(raw["hauteurs"], "hauteurs")
	s.Bissectrices = s.parseTriples(raw["bissectrices"], "bissectrices")
	s.Mediatrices = s.parseEdgeList(raw["mediatrices"], "mediatrices")

	return s
}

// parseSegments decodes entries of the form ["A", "B", {"longueur": 5}].
func (s *Schema) parseSegments(v any) []SegmentSpec {
	list, ok := v.([]any)
	if !ok {
		if v != nil {
			s.issuef("segments: expected a list")
		}
		return nil
	}
	var out []SegmentSpec
	for i, e := range list {
		entry, ok := e.([]any)
		if !ok || len(entry) < 2 {
			s.issuef("segments[%d]: expected [from, to, {props}]", i)
			continue
		}
		from, ok1 := entry[0].(string)
		to, ok2 := entry[1].(string)
		if !ok1 || !ok2 {
			s.issuef("segments[%d]: endpoints must be point names", i)
			continue
		}
		spec := SegmentSpec{From: from, To: to}
		if len(entry) >= 3 {
			if props, ok := entry[2].(map[string]any); ok {
				if l, ok := props["longueur"].(float64); ok {
					spec.Length = l
					spec.HasLength = true
				}
			}
		}
		out = append(out, spec)
	}
	return out
}

// parseAngles decodes entries of the form ["B", {"angle_droit": true}].
func (s *Schema) parseAngles(v any) []AngleSpec {
	list, ok := v.([]any)
	if !ok {
		if v != nil {
			s.issuef("angles: expected a list")
		}
		return nil
	}
	var out []AngleSpec
	for i, e := range list {
		entry, ok := e.([]any)
		if !ok || len(entry) < 1 {
			s.issuef("angles[%d]: expected [vertex, {props}]", i)
			continue
		}
		vertex, ok := entry[0].(string)
		if !ok {
			s.issuef("angles[%d]: vertex must be a point name", i)
			continue
		}
		spec := AngleSpec{Vertex: vertex}
		if len(entry) >= 2 {
			if props, ok := entry[1].(map[string]any); ok {
				spec.RightAngle = asBool(props["angle_droit"])
			}
		}
		out = append(out, spec)
	}
	return out
}

// parseEdgeGroups decodes groups of edges: [[["A","B"],["C","D"]], ...].
func (s *Schema) parseEdgeGroups(v any, field string) [][]Edge {
	list, ok := v.([]any)
	if !ok {
		if v != nil {
			s.issuef("%s: expected a list", field)
		}
		return nil
	}
	var out [][]Edge
	for i, g := range list {
		groupRaw, ok := g.([]any)
		if !ok {
			s.issuef("%s[%d]: expected a group of edges", field, i)
			continue
		}
		var group []Edge
		for j, e := range groupRaw {
			edge, ok := asEdge(e)
			if !ok {
				s.issuef("%s[%d][%d]: expected [from, to]", field, i, j)
				continue
			}
			group = append(group, edge)
		}
		if len(group) > 0 {
			out = append(out, group)
		}
	}
	return out
}

// parseEdgeList decodes a flat list of edges: [["A","B"], ...].
func (s *Schema) parseEdgeList(v any, field string) []Edge {
	list, ok := v.([]any)
	if !ok {
		if v != nil {
			s.issuef("%s: expected a list", field)
		}
		return nil
	}
	var out []Edge
	for i, e := range list {
		edge, ok := asEdge(e)
		if !ok {
			s.issuef("%s[%d]: expected [from, to]", field, i)
			continue
		}
		out = append(out, edge)
	}
	return out
}

// parseTriples decodes point triples: [["A","B","C"], ...].
func (s *Schema) parseTriples(v any, field string) []Triple {
	list, ok := v.([]any)
	if !ok {
		if v != nil {
			s.issuef("%s: expected a list", field)
		}
		return nil
	}
	var out []Triple
	for i, e := range list {
		entry, ok := e.([]any)
		if !ok || len(entry) < 3 {
			s.issuef("%s[%d]: expected [vertex, sideA, sideB]", field, i)
			continue
		}
		a, ok1 := entry[0].(string)
		b, ok2 := entry[1].(string)
		c, ok3 := entry[2].(string)
		if !ok1 || !ok2 || !ok3 {
			s.issuef("%s[%d]: entries must be point names", field, i)
			continue
		}
		out = append(out, Triple{Vertex: a, SideA: b, SideB: c})
	}
	return out
}

func (s *Schema) issuef(format string, args ...any) {
	s.parseIssues = append(s.parseIssues, fmt.Sprintf(format, args...))
}

// pointNames returns the effective point list: declared points first, padded
// with the family's default names up to its base arity.
func (s *Schema) pointNames() []string {
	defaults := defaultPointNames(s.Type)
	if len(s.Points) >= len(defaults) {
		return s.Points
	}
	names := append([]string{}, s.Points...)
	for i := len(names); i < len(defaults); i++ {
		names = append(names, defaults[i])
	}
	return names
}

func defaultPointNames(t ShapeType) []string {
	switch t.arity() {
	case 1:
		return []string{"O"}
	case 3:
		return []string{"A", "B", "C"}
	case 4:
		return []string{"A", "B", "C", "D"}
	}
	return nil
}

func asEdge(v any) (Edge, bool) {
	entry, ok := v.([]any)
	if !ok || len(entry) < 2 {
		return Edge{}, false
	}
	from, ok1 := entry[0].(string)
	to, ok2 := entry[1].(string)
	if !ok1 || !ok2 {
		return Edge{}, false
	}
	return Edge{From: from, To: to}, true
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
