package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when the width cannot be detected.
const DefaultTermWidth = 100

// minMarkdownWidth keeps rendered guides readable in narrow panes.
const minMarkdownWidth = 40

// DisplayContext describes the terminal output is written to.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext inspects stdout. $COLUMNS overrides the detected width.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	isTTY := term.IsTerminal(fd)
	return &DisplayContext{
		TermWidth: detectWidth(fd, isTTY, os.Getenv("COLUMNS")),
		IsTTY:     isTTY,
	}
}

// NewDisplayContextWithWidth returns a terminal context of a fixed width.
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: true}
}

func detectWidth(fd uintptr, isTTY bool, columns string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(columns)); err == nil && n > 0 {
		return n
	}
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return DefaultTermWidth
}

// MarkdownWidth is the wrap width for rendered guides, leaving room for the
// render margin on both sides.
func (d *DisplayContext) MarkdownWidth() int {
	if w := d.TermWidth - 2*MarkdownRenderMargin; w > minMarkdownWidth {
		return w
	}
	return minMarkdownWidth
}
