package ui

import "testing"

func TestDetectWidth(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		want    int
	}{
		{"columns override", "72", 72},
		{"columns padded", " 90 ", 90},
		{"columns invalid", "wide", DefaultTermWidth},
		{"columns zero", "0", DefaultTermWidth},
		{"unset", "", DefaultTermWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectWidth(0, false, tt.columns); got != tt.want {
				t.Fatalf("detectWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMarkdownWidth(t *testing.T) {
	if got := NewDisplayContextWithWidth(100).MarkdownWidth(); got != 96 {
		t.Fatalf("MarkdownWidth() = %d, want 96", got)
	}
	if got := NewDisplayContextWithWidth(30).MarkdownWidth(); got != minMarkdownWidth {
		t.Fatalf("narrow MarkdownWidth() = %d, want %d", got, minMarkdownWidth)
	}
}
