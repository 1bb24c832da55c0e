package tour

import (
	"reflect"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", nil},
		{"tour", Path{"tour"}},
		{"tour.tmck.the_pageant", Path{"tour", "tmck", "the_pageant"}},
		{"tour..advance", Path{"tour", "", "advance"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParsePath(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParsePath(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestPathPredicates(t *testing.T) {
	tests := []struct {
		project          string
		tour, bare, full bool
	}{
		{"", false, false, false},
		{"work", false, false, false},
		{"tour", true, true, false},
		{"tour.tmck", true, false, true},
		{"Tour.tmck", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.project, func(t *testing.T) {
			p := ParsePath(tt.project)
			if p.IsTour() != tt.tour {
				t.Errorf("IsTour() = %v, want %v", p.IsTour(), tt.tour)
			}
			if p.IsBareRoot() != tt.bare {
				t.Errorf("IsBareRoot() = %v, want %v", p.IsBareRoot(), tt.bare)
			}
			if p.IsClassifiable() != tt.full {
				t.Errorf("IsClassifiable() = %v, want %v", p.IsClassifiable(), tt.full)
			}
		})
	}
}

func TestCategorySet(t *testing.T) {
	c := NewCategorySet(" Logistics ", "advance", "", "ADVANCE", "  ")
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := c.Names(); !reflect.DeepEqual(got, []string{"advance", "logistics"}) {
		t.Fatalf("Names() = %v", got)
	}
	if !c.Contains("logistics") {
		t.Fatal("expected logistics to be contained")
	}
	if c.Contains("Logistics") {
		t.Fatal("Contains must match exactly")
	}

	var zero CategorySet
	if zero.Contains("advance") || zero.Len() != 0 {
		t.Fatal("zero CategorySet should be empty")
	}
}

func TestDefaultCategories(t *testing.T) {
	got := DefaultCategories().Names()
	if !reflect.DeepEqual(got, []string{"advance", "logistics"}) {
		t.Fatalf("DefaultCategories() = %v", got)
	}
}

func TestTagSet(t *testing.T) {
	s := NewTagSet("b", "a", "b")
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Add("c") {
		t.Fatal("Add of a new tag should report true")
	}
	if s.Add("c") {
		t.Fatal("Add of an existing tag should report false")
	}
	if !s.Remove("a") {
		t.Fatal("Remove of a present tag should report true")
	}
	if s.Remove("a") {
		t.Fatal("Remove of a missing tag should report false")
	}

	if got := s.Sorted(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("Sorted() = %v", got)
	}
	if got := NewTagSet("", "x").Sorted(); !reflect.DeepEqual(got, []string{"", "x"}) {
		t.Fatalf("empty-string tags must be kept, got %q", got)
	}
	if got := NewTagSet().Sorted(); got == nil || len(got) != 0 {
		t.Fatalf("Sorted() of empty set = %#v, want empty non-nil slice", got)
	}
}
