package paths

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.task", filepath.Join(home, ".task")},
		{"  ~/.task/hooks ", filepath.Join(home, ".task", "hooks")},
		{"/etc/task", "/etc/task"},
		{"relative/dir", "relative/dir"},
		{"~bob/x", "~bob/x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandHome(tt.in); got != tt.want {
				t.Fatalf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTaskDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("override wins", func(t *testing.T) {
		t.Setenv(TaskDataEnv, "/env/task")
		if got := TaskDataDir("/tw/data"); got != "/tw/data" {
			t.Fatalf("TaskDataDir() = %q", got)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(TaskDataEnv, "~/tasks")
		if got := TaskDataDir(""); got != filepath.Join(home, "tasks") {
			t.Fatalf("TaskDataDir() = %q", got)
		}
	})

	t.Run("home default", func(t *testing.T) {
		t.Setenv(TaskDataEnv, "")
		if got := TaskDataDir(""); got != filepath.Join(home, ".task") {
			t.Fatalf("TaskDataDir() = %q", got)
		}
	})

	t.Run("hooks dir", func(t *testing.T) {
		t.Setenv(TaskDataEnv, "")
		if got := HooksDir(""); got != filepath.Join(home, ".task", "hooks") {
			t.Fatalf("HooksDir() = %q", got)
		}
	})
}
