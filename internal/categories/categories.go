// Package categories loads the recognized tour categories from disk.
//
// The default source is a plain text file with one category per line:
//
//	# Tour categories
//	logistics
//	advance
//	merch
//
// Files ending in .yaml or .yml may instead hold a YAML list, either at the
// top level or under a "categories" key. Any failure to read or parse the
// source falls back to the built-in defaults.
package categories

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/tourtag/internal/atomicfile"
	"github.com/aidanlsb/tourtag/internal/paths"
	"github.com/aidanlsb/tourtag/internal/tour"
)

// FileName is the default category file name inside the task data directory.
const FileName = "tour-categories.txt"

// Origin says where a loaded CategorySet came from.
type Origin string

const (
	OriginFile    Origin = "file"
	OriginDefault Origin = "default"
)

// Fallback reasons that leave nothing on disk worth keeping.
const (
	ReasonMissing = "file does not exist"
	ReasonEmpty   = "file has no categories"
)

// Source describes the outcome of Load.
type Source struct {
	Path   string `json:"path"`
	Origin Origin `json:"origin"`
	// Reason explains a fallback to the defaults; empty for OriginFile.
	Reason string `json:"reason,omitempty"`
}

// DefaultPath returns the category file location inside the task data
// directory (see paths.TaskDataDir for how dataDir is resolved).
func DefaultPath(dataDir string) string {
	return filepath.Join(paths.TaskDataDir(dataDir), FileName)
}

// Unreadable reports whether Load fell back to the defaults although the file
// exists and holds something it could not read or parse. Rewriting such a
// file would discard its contents.
func (s Source) Unreadable() bool {
	return s.Origin == OriginDefault && s.Reason != ReasonMissing && s.Reason != ReasonEmpty
}

// Load reads the category set from path. It never fails: a missing,
// unreadable or empty source yields the built-in defaults, and the returned
// Source records why.
func Load(path string) (tour.CategorySet, Source) {
	src := Source{Path: path, Origin: OriginDefault}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			src.Reason = ReasonMissing
		} else {
			src.Reason = err.Error()
		}
		return tour.DefaultCategories(), src
	}
	defer f.Close()

	names, err := Parse(f, IsYAML(path))
	if err != nil {
		src.Reason = err.Error()
		return tour.DefaultCategories(), src
	}
	set := tour.NewCategorySet(names...)
	if set.Len() == 0 {
		src.Reason = ReasonEmpty
		return tour.DefaultCategories(), src
	}

	src.Origin = OriginFile
	return set, src
}

// IsYAML reports whether path should be read as YAML.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Parse reads category names from r. Names are returned as written; the
// caller normalizes them through tour.NewCategorySet.
func Parse(r io.Reader, asYAML bool) ([]string, error) {
	if asYAML {
		return parseYAML(r)
	}
	return parseLines(r)
}

func parseLines(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return names, nil
}

type yamlFile struct {
	Categories []string `yaml:"categories"`
}

func parseYAML(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := root.Decode(&names); err != nil {
			return nil, fmt.Errorf("parse categories: %w", err)
		}
		return names, nil
	case yaml.MappingNode:
		var file yamlFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse categories: %w", err)
		}
		return file.Categories, nil
	default:
		return nil, fmt.Errorf("parse categories: expected a list or a categories: key")
	}
}

const lineHeader = `# Tour categories, one per line.
# Blank lines and lines starting with # are ignored.
`

// Save writes the categories to path atomically, sorted and de-duplicated,
// in the format implied by the file extension.
func Save(path string, set tour.CategorySet) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("categories path is required")
	}

	var buf bytes.Buffer
	if IsYAML(path) {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(yamlFile{Categories: set.Names()}); err != nil {
			return fmt.Errorf("failed to marshal categories: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal categories: %w", err)
		}
	} else {
		buf.WriteString(lineHeader)
		for _, name := range set.Names() {
			buf.WriteString(name)
			buf.WriteByte('\n')
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create categories directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("failed to write categories %s: %w", path, err)
	}
	return nil
}
