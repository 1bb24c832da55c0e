// Package tour derives classification tags from dotted tour project names.
//
// Project structure: tour.<name>.<venue>.<category>
//
//   - "tour" alone is the bare root and is not a valid project
//   - tour.<category> is a standalone category project
//   - tour.<name>[.<venue>...][.<category>] is a named tour project
//
// Everything in this package is pure: no I/O and no package-level mutable state.
package tour

import "strings"

const (
	// RootMarker is the first segment that marks a project as a tour project.
	RootMarker = "tour"

	// Delimiter separates project segments.
	Delimiter = "."
)

// Path is a project split into its dotted segments.
type Path []string

// ParsePath splits a project string on the delimiter.
// An empty project yields an empty path.
func ParsePath(project string) Path {
	if project == "" {
		return nil
	}
	return Path(strings.Split(project, Delimiter))
}

// Join builds a project string from segments.
func Join(segments ...string) string {
	return strings.Join(segments, Delimiter)
}

// String returns the dotted project form of the path.
func (p Path) String() string {
	return Join(p...)
}

// IsTour reports whether the path starts with the tour root marker.
func (p Path) IsTour() bool {
	return len(p) > 0 && p[0] == RootMarker
}

// IsBareRoot reports whether the path is the root marker with no sub-parts.
func (p Path) IsBareRoot() bool {
	return len(p) == 1 && p[0] == RootMarker
}

// IsClassifiable reports whether the path is a tour path with at least one
// sub-part, i.e. a project the hook derives tags for.
func (p Path) IsClassifiable() bool {
	return p.IsTour() && len(p) > 1
}

// Last returns the final segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}
