package tour

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	defaults := DefaultCategories()

	tests := []struct {
		name          string
		project       string
		wantAll       []string
		wantRemovable []string
	}{
		{
			name:          "empty project",
			project:       "",
			wantAll:       []string{},
			wantRemovable: []string{},
		},
		{
			name:          "non-tour project",
			project:       "home.garden",
			wantAll:       []string{},
			wantRemovable: []string{},
		},
		{
			name:          "tour prefix inside another root",
			project:       "tours.tmck",
			wantAll:       []string{},
			wantRemovable: []string{},
		},
		{
			name:          "bare root",
			project:       "tour",
			wantAll:       []string{"tour", "work"},
			wantRemovable: []string{"tour"},
		},
		{
			name:          "standalone category",
			project:       "tour.logistics",
			wantAll:       []string{"tour", "tour.logistics", "work"},
			wantRemovable: []string{"tour", "tour.logistics"},
		},
		{
			name:          "tour name",
			project:       "tour.tmck",
			wantAll:       []string{"tmck", "tour", "work"},
			wantRemovable: []string{"tmck", "tour"},
		},
		{
			name:          "tour name and venue",
			project:       "tour.tmck.the_pageant",
			wantAll:       []string{"tmck", "tour", "work"},
			wantRemovable: []string{"tmck", "tour"},
		},
		{
			name:          "tour name with category",
			project:       "tour.tmck.logistics",
			wantAll:       []string{"tmck", "tour", "tour.logistics", "work"},
			wantRemovable: []string{"tmck", "tour", "tour.logistics"},
		},
		{
			name:          "tour name venue and category",
			project:       "tour.tmck.the_pageant.advance",
			wantAll:       []string{"tmck", "tour", "tour.advance", "work"},
			wantRemovable: []string{"tmck", "tour", "tour.advance"},
		},
		{
			name:          "category in middle segment is ignored",
			project:       "tour.tmck.advance.the_pageant",
			wantAll:       []string{"tmck", "tour", "work"},
			wantRemovable: []string{"tmck", "tour"},
		},
		{
			name:          "category as second segment with more parts is a name",
			project:       "tour.logistics.the_pageant",
			wantAll:       []string{"logistics", "tour", "work"},
			wantRemovable: []string{"logistics", "tour"},
		},
		{
			name:          "category in both second and last segment",
			project:       "tour.advance.the_pageant.logistics",
			wantAll:       []string{"advance", "tour", "tour.logistics", "work"},
			wantRemovable: []string{"advance", "tour", "tour.logistics"},
		},
		{
			name:          "segments are not case folded",
			project:       "tour.TMCK.Advance",
			wantAll:       []string{"TMCK", "tour", "work"},
			wantRemovable: []string{"TMCK", "tour"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(ParsePath(tt.project), defaults)
			if all := got.All.Sorted(); !reflect.DeepEqual(all, tt.wantAll) {
				t.Errorf("All = %v, want %v", all, tt.wantAll)
			}
			if removable := got.Removable.Sorted(); !reflect.DeepEqual(removable, tt.wantRemovable) {
				t.Errorf("Removable = %v, want %v", removable, tt.wantRemovable)
			}
		})
	}
}

func TestClassifyInvariants(t *testing.T) {
	categories := NewCategorySet("logistics", "advance", "merch")
	projects := []string{
		"tour",
		"tour.merch",
		"tour.tmck",
		"tour.tmck.merch",
		"tour.tmck.the_pageant.advance",
		"tour.a.b.c.d.e",
	}

	for _, project := range projects {
		t.Run(project, func(t *testing.T) {
			d := Classify(ParsePath(project), categories)
			if !d.All.Has(TagWork) || !d.All.Has(TagTour) {
				t.Fatalf("base tags missing from All: %v", d.All.Sorted())
			}
			if d.Removable.Has(TagWork) {
				t.Fatalf("work must never be removable: %v", d.Removable.Sorted())
			}
			for tag := range d.Removable {
				if !d.All.Has(tag) {
					t.Fatalf("removable tag %q missing from All", tag)
				}
			}
		})
	}
}

func TestClassifyNonTourIgnoresCategories(t *testing.T) {
	categories := NewCategorySet("home", "garden")
	d := Classify(ParsePath("home.garden"), categories)
	if d.All.Len() != 0 || d.Removable.Len() != 0 {
		t.Fatalf("expected no tags, got All=%v Removable=%v", d.All.Sorted(), d.Removable.Sorted())
	}
}

func TestClassifyUsesGivenCategories(t *testing.T) {
	custom := NewCategorySet("merch")

	d := Classify(ParsePath("tour.logistics"), custom)
	if d.All.Has(CategoryTag("logistics")) {
		t.Fatal("logistics is not a category in the custom set")
	}
	if !d.All.Has("logistics") {
		t.Fatal("expected logistics to be treated as a tour name")
	}

	d = Classify(ParsePath("tour.merch"), custom)
	if !d.All.Has("tour.merch") {
		t.Fatalf("expected tour.merch, got %v", d.All.Sorted())
	}
}

func TestDescribe(t *testing.T) {
	defaults := DefaultCategories()

	tests := []struct {
		project      string
		wantKind     Kind
		wantName     string
		wantCategory string
	}{
		{"", KindNone, "", ""},
		{"home", KindNone, "", ""},
		{"tour", KindBareRoot, "", ""},
		{"tour.advance", KindCategory, "", "advance"},
		{"tour.tmck", KindNamed, "tmck", ""},
		{"tour.tmck.the_pageant", KindNamed, "tmck", ""},
		{"tour.tmck.the_pageant.logistics", KindNamedCategory, "tmck", "logistics"},
	}

	for _, tt := range tests {
		t.Run(tt.project, func(t *testing.T) {
			kind, name, category := Describe(ParsePath(tt.project), defaults)
			if kind != tt.wantKind || name != tt.wantName || category != tt.wantCategory {
				t.Fatalf("Describe(%q) = (%s, %q, %q), want (%s, %q, %q)",
					tt.project, kind, name, category, tt.wantKind, tt.wantName, tt.wantCategory)
			}
		})
	}
}
