// Package testutil provides reusable test utilities for tourtag integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestHome is a temporary home directory with a Taskwarrior data directory
// and a tourtag config path. Commands run against it see HOME, TASKDATA and
// XDG_CONFIG_HOME pointing inside it.
type TestHome struct {
	Path       string
	TaskData   string
	ConfigPath string
	t          *testing.T
	files      map[string]string
}

// NewTestHome creates a new test home builder.
// Call Build() to create the actual directory.
func NewTestHome(t *testing.T) *TestHome {
	t.Helper()
	return &TestHome{
		t:     t,
		files: make(map[string]string),
	}
}

// WithCategories sets the content of .task/tour-categories.txt.
func (h *TestHome) WithCategories(content string) *TestHome {
	h.files[filepath.Join(".task", "tour-categories.txt")] = content
	return h
}

// WithConfig sets the content of the tourtag config.toml.
func (h *TestHome) WithConfig(toml string) *TestHome {
	h.files["config.toml"] = toml
	return h
}

// WithFile adds a file relative to the home directory.
func (h *TestHome) WithFile(path, content string) *TestHome {
	h.files[path] = content
	return h
}

// Build creates the home directory and all configured files.
// Returns the TestHome for method chaining.
func (h *TestHome) Build() *TestHome {
	h.t.Helper()

	h.Path = h.t.TempDir()
	h.TaskData = filepath.Join(h.Path, ".task")
	h.ConfigPath = filepath.Join(h.Path, "config.toml")

	if err := os.MkdirAll(h.TaskData, 0o755); err != nil {
		h.t.Fatalf("failed to create task data dir: %v", err)
	}
	for path, content := range h.files {
		h.writeFile(path, content)
	}
	return h
}

// Env returns the environment commands are run with.
func (h *TestHome) Env() []string {
	env := make([]string, 0, len(os.Environ())+3)
	for _, kv := range os.Environ() {
		switch envKey(kv) {
		case "HOME", "TASKDATA", "XDG_CONFIG_HOME", "TOURTAG_NO_HOOKS", "TOURTAG_DEBUG":
			continue
		}
		env = append(env, kv)
	}
	return append(env,
		"HOME="+h.Path,
		"TASKDATA="+h.TaskData,
		"XDG_CONFIG_HOME="+filepath.Join(h.Path, ".config"),
	)
}

// Abs returns the absolute path of a file inside the home directory.
func (h *TestHome) Abs(relPath string) string {
	return filepath.Join(h.Path, relPath)
}

// ReadFile reads a file relative to the home directory.
func (h *TestHome) ReadFile(relPath string) string {
	h.t.Helper()
	content, err := os.ReadFile(h.Abs(relPath))
	if err != nil {
		h.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// writeFile writes a file, creating directories as needed.
func (h *TestHome) writeFile(relPath, content string) {
	h.t.Helper()
	fullPath := h.Abs(relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		h.t.Fatalf("failed to write file %s: %v", relPath, err)
	}
}

func envKey(kv string) string {
	key, _, _ := strings.Cut(kv, "=")
	return key
}
