package docs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const guideDir = "guide"

// Topic is one bundled guide.
type Topic struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Topics lists the bundled guides sorted by ID.
func Topics() ([]Topic, error) {
	return topicsFS(FS, guideDir)
}

// Read returns the Markdown source of a guide.
func Read(id string) (Topic, string, error) {
	topics, err := Topics()
	if err != nil {
		return Topic{}, "", err
	}
	for _, t := range topics {
		if t.ID == id {
			content, err := fs.ReadFile(FS, t.Path)
			if err != nil {
				return Topic{}, "", fmt.Errorf("read guide %q: %w", id, err)
			}
			return t, string(content), nil
		}
	}
	return Topic{}, "", fmt.Errorf("unknown guide topic %q", id)
}

func topicsFS(fsys fs.FS, dir string) ([]Topic, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}

	topics := make([]Topic, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, ".") {
			continue
		}
		p := path.Join(dir, name)
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read guide %s: %w", p, err)
		}
		id := strings.TrimSuffix(name, ".md")
		title := FirstHeading(content)
		if title == "" {
			title = id
		}
		topics = append(topics, Topic{ID: id, Title: title, Path: p})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

// FirstHeading returns the text of the first level-1 heading, or the first
// heading of any level when there is no level-1 heading.
func FirstHeading(content []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	var first, top string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := headingText(h, content)
		if first == "" {
			first = title
		}
		if h.Level == 1 {
			top = title
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})

	if top != "" {
		return top
	}
	return first
}

func headingText(h *ast.Heading, source []byte) string {
	var sb strings.Builder
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimSpace(sb.String())
}
