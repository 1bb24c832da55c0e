package testutil

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

// AssertFileExists fails the test if the file does not exist.
func (h *TestHome) AssertFileExists(relPath string) {
	h.t.Helper()
	if _, err := os.Stat(h.Abs(relPath)); os.IsNotExist(err) {
		h.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (h *TestHome) AssertFileNotExists(relPath string) {
	h.t.Helper()
	if _, err := os.Stat(h.Abs(relPath)); err == nil {
		h.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (h *TestHome) AssertFileContains(relPath, substr string) {
	h.t.Helper()
	content := h.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		h.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertExecutable fails the test if the file is not executable by its owner.
func (h *TestHome) AssertExecutable(relPath string) {
	h.t.Helper()
	info, err := os.Stat(h.Abs(relPath))
	if err != nil {
		h.t.Errorf("expected file to exist: %s", relPath)
		return
	}
	if info.Mode().Perm()&0o100 == 0 {
		h.t.Errorf("expected %s to be executable, mode %v", relPath, info.Mode().Perm())
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}

// AssertAccepted fails unless the hook exited 0 with a task on stdout.
func (r *HookResult) AssertAccepted(t *testing.T) {
	t.Helper()
	if r.ExitCode != 0 {
		t.Fatalf("expected hook to accept, exit=%d stderr=%q", r.ExitCode, r.Stderr)
	}
	if strings.TrimSpace(r.Stdout) == "" {
		t.Fatalf("expected a task on stdout, stderr=%q", r.Stderr)
	}
}

// AssertRejected fails unless the hook exited 1 with nothing on stdout.
func (r *HookResult) AssertRejected(t *testing.T) {
	t.Helper()
	if r.ExitCode != 1 {
		t.Fatalf("expected hook to reject with exit 1, got exit=%d stdout=%q", r.ExitCode, r.Stdout)
	}
	if r.Stdout != "" {
		t.Fatalf("expected empty stdout on reject, got %q", r.Stdout)
	}
}

// AssertTags fails unless the hook's task carries exactly want, in order.
func (r *HookResult) AssertTags(t *testing.T, want ...string) {
	t.Helper()
	got := r.Tags(t)
	if len(want) == 0 {
		want = []string{}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
}
