// Package slugs turns human-entered tour, venue and category names into
// project path segments.
//
// Segments use underscores rather than dashes ("The Pageant" -> "the_pageant")
// and never contain the "." delimiter, so a slugged name always stays one
// segment of the project path.
package slugs

import (
	"fmt"
	"strings"

	goslug "github.com/gosimple/slug"

	"github.com/aidanlsb/tourtag/internal/tour"
)

// Segment converts a name into a single project path segment.
func Segment(name string) string {
	s := goslug.Make(name)
	if s == "" {
		// gosimple/slug drops everything it can't transliterate.
		s = strings.ToLower(strings.Join(strings.Fields(name), "-"))
		s = strings.ReplaceAll(s, tour.Delimiter, "-")
	}
	return strings.ReplaceAll(s, "-", "_")
}

// ProjectInput describes a project to compose.
type ProjectInput struct {
	Tour     string
	Venue    string
	Category string
}

// ProjectPath builds a tour project from human-entered parts. At least one of
// Tour or Category is required. A venue without a tour is rejected because
// tour.<venue> would be read as a tour name.
func ProjectPath(in ProjectInput) (string, error) {
	name := Segment(in.Tour)
	venue := Segment(in.Venue)
	category := Segment(in.Category)

	switch {
	case name == "" && venue != "":
		return "", fmt.Errorf("a venue requires a tour name")
	case name == "" && category == "":
		return "", fmt.Errorf("a tour name or a category is required")
	}

	segments := []string{tour.RootMarker}
	for _, s := range []string{name, venue, category} {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return tour.Join(segments...), nil
}
