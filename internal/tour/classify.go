package tour

// Derived holds the tags a tour project implies.
type Derived struct {
	// All is every tag the project should carry.
	All TagSet

	// Removable is the subset that may be stripped when the project changes.
	// It never contains TagWork.
	Removable TagSet
}

// Classify derives the tag sets for a project path.
//
// Category recognition only wins over name interpretation at exactly two
// segments (tour.<category>). With three or more segments the second segment
// is always the tour name and only the last segment is checked against the
// categories, so a venue that happens to match a category is ignored.
func Classify(path Path, categories CategorySet) Derived {
	d := Derived{All: NewTagSet(), Removable: NewTagSet()}
	if !path.IsTour() {
		return d
	}

	d.All.Add(TagWork)
	d.add(TagTour)

	if len(path) < 2 {
		return d
	}

	second := path[1]
	if len(path) == 2 && categories.Contains(second) {
		d.add(CategoryTag(second))
		return d
	}

	d.add(second)
	if len(path) >= 3 {
		if last := path.Last(); categories.Contains(last) {
			d.add(CategoryTag(last))
		}
	}
	return d
}

func (d Derived) add(tag string) {
	d.All.Add(tag)
	d.Removable.Add(tag)
}

// Kind describes how a path was interpreted.
type Kind string

const (
	KindNone          Kind = "none"
	KindBareRoot      Kind = "bare_root"
	KindCategory      Kind = "category"
	KindNamed         Kind = "named"
	KindNamedCategory Kind = "named_category"
)

// Describe returns the interpretation Classify applies to path, along with
// the tour name and category it recognized (either may be empty).
func Describe(path Path, categories CategorySet) (kind Kind, name, category string) {
	switch {
	case !path.IsTour():
		return KindNone, "", ""
	case path.IsBareRoot():
		return KindBareRoot, "", ""
	case len(path) == 2 && categories.Contains(path[1]):
		return KindCategory, "", path[1]
	case len(path) >= 3 && categories.Contains(path.Last()):
		return KindNamedCategory, path[1], path.Last()
	default:
		return KindNamed, path[1], ""
	}
}
