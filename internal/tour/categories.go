package tour

import (
	"sort"
	"strings"
)

// defaultCategoryNames back DefaultCategories.
var defaultCategoryNames = []string{"logistics", "advance"}

// CategorySet is the immutable set of recognized category names.
// The zero value is an empty set.
type CategorySet struct {
	names map[string]struct{}
}

// NewCategorySet builds a set from names. Names are trimmed and lower-cased;
// blanks are skipped.
func NewCategorySet(names ...string) CategorySet {
	m := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		m[name] = struct{}{}
	}
	return CategorySet{names: m}
}

// DefaultCategories returns the built-in fallback set {"logistics", "advance"}.
func DefaultCategories() CategorySet {
	return NewCategorySet(defaultCategoryNames...)
}

// Contains reports whether name is a recognized category.
// Matching is exact; segments are not case-folded.
func (c CategorySet) Contains(name string) bool {
	_, ok := c.names[name]
	return ok
}

// Len returns the number of categories.
func (c CategorySet) Len() int {
	return len(c.names)
}

// Names returns the categories in lexical order.
func (c CategorySet) Names() []string {
	out := make([]string, 0, len(c.names))
	for name := range c.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
