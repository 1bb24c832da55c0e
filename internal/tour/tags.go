package tour

import "sort"

// Tags that every tour project carries.
const (
	// TagWork marks work-related tasks. It may be set on non-tour tasks too,
	// so it is never removed automatically.
	TagWork = "work"

	// TagTour marks tasks filed under any tour project.
	TagTour = "tour"
)

// TagSet is an unordered set of task tags.
type TagSet map[string]struct{}

// NewTagSet builds a set from tags, dropping duplicates. Tags are kept as
// given, even "", since tags the rules do not derive are never touched.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, tag := range tags {
		s[tag] = struct{}{}
	}
	return s
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Add inserts tag and reports whether it was not already present.
func (s TagSet) Add(tag string) bool {
	if s.Has(tag) {
		return false
	}
	s[tag] = struct{}{}
	return true
}

// Remove deletes tag and reports whether it was present.
func (s TagSet) Remove(tag string) bool {
	if !s.Has(tag) {
		return false
	}
	delete(s, tag)
	return true
}

// Len returns the number of tags.
func (s TagSet) Len() int {
	return len(s)
}

// Sorted returns the tags in lexical order. The result is never nil.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// CategoryTag returns the composite tag for a category, e.g. "tour.advance".
func CategoryTag(category string) string {
	return RootMarker + Delimiter + category
}
