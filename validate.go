package gofigure

import (
	"fmt"
)

// Validate checks a schema for structural issues and returns whether it is
// clean plus a list of human-readable problems. Validity is advisory:
// rendering proceeds regardless, substituting defaults for anything invalid,
// so a bad schema degrades to a partial figure instead of blocking the
// document pipeline.
func Validate(s *Schema) (bool, []string) {
	var issues []string
	if s == nil {
		return false, []string{"schema is nil"}
	}
	issues = append(issues, s.parseIssues...)

	if s.Type == ShapeUnknown && s.RawType != "" {
		issues = append(issues, fmt.Sprintf("unsupported shape type %q, using generic fallback", s.RawType))
	}

	if n := s.Type.arity(); n > 0 && len(s.Points) > 0 && len(s.Points) < n {
		issues = append(issues, fmt.Sprintf("%s requires %d points, got %d", s.Type, n, len(s.Points)))
	}

	seen := map[string]bool{}
	for _, p := range s.Points {
		if seen[p] {
			issues = append(issues, fmt.Sprintf("duplicate point %q", p))
		}
		seen[p] = true
	}

	for name, label := range s.Labels {
		if !looksLikeCoordinate(label) {
			continue // plain display label
		}
		if _, ok := parseCoordinate(label); !ok {
			issues = append(issues, fmt.Sprintf("labels[%s]: cannot parse coordinate %q", name, label))
		}
	}

	known := map[string]bool{}
	for _, p := range s.pointNames() {
		known[p] = true
	}
	ref := func(field, p string) {
		if !known[p] {
			issues = append(issues, fmt.Sprintf("%s: point %q is not declared in points", field, p))
		}
	}

	for _, seg := range s.Segments {
		ref("segments", seg.From)
		ref("segments", seg.To)
	}
	for _, a := range s.Angles {
		ref("angles", a.Vertex)
	}
	for _, group := range s.Egaux {
		for _, e := range group {
			ref("egaux", e.From)
			ref("egaux", e.To)
		}
	}
	for _, group := range s.Paralleles {
		for _, e := range group {
			ref("paralleles", e.From)
			ref("paralleles", e.To)
		}
	}
	for _, group := range s.Perpendiculaires {
		for _, e := range group {
			ref("perpendiculaires", e.From)
			ref("perpendiculaires", e.To)
		}
	}
	for _, t := range s.Medianes {
		ref("medianes", t.Vertex)
		ref("medianes", t.SideA)
		ref("medianes", t.SideB)
	}
	for _, t := range s.Hauteurs {
		ref("hauteurs", t.Vertex)
		ref("hauteurs", t.SideA)
		ref("hauteurs", t.SideB)
	}
	for _, t := range s.Bissectrices {
		ref("bissectrices", t.Vertex)
		ref("bissectrices", t.SideA)
		ref("bissectrices", t.SideB)
	}
	for _, e := range s.Mediatrices {
		ref("mediatrices", e.From)
		ref("mediatrices", e.To)
	}

	return len(issues) == 0, issues
}
