package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// tagListValue is a pflag.Value collecting tags from comma-separated and
// repeated flags. A leading "+" is dropped so "+work,+tour" reads the same
// as "work,tour".
type tagListValue struct {
	tags *[]string
}

var _ pflag.Value = (*tagListValue)(nil)

func newTagListValue(p *[]string) *tagListValue {
	return &tagListValue{tags: p}
}

func (v *tagListValue) String() string {
	if v.tags == nil {
		return ""
	}
	return strings.Join(*v.tags, ",")
}

func (v *tagListValue) Set(raw string) error {
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimPrefix(strings.TrimSpace(part), "+")
		if tag == "" {
			continue
		}
		*v.tags = append(*v.tags, tag)
	}
	return nil
}

func (v *tagListValue) Type() string {
	return "tags"
}
