package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func TestTagListValue(t *testing.T) {
	var tags []string
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(newTagListValue(&tags), "tags", "")

	if err := fs.Parse([]string{"--tags", "+work, tour,,", "--tags=tmck"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"work", "tour", "tmck"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}

	f := fs.Lookup("tags")
	if f.Value.Type() != "tags" {
		t.Fatalf("Type() = %q", f.Value.Type())
	}
	if f.Value.String() != "work,tour,tmck" {
		t.Fatalf("String() = %q", f.Value.String())
	}
}
