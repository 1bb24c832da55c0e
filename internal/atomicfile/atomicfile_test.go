package atomicfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour-categories.txt")

	if err := WriteFile(path, []byte("merch\n"), 0); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "merch\n" {
		t.Fatalf("content = %q", got)
	}

	if err := WriteFile(path, []byte("advance\n"), 0); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}
	got, _ = os.ReadFile(path)
	if string(got) != "advance\n" {
		t.Fatalf("content after overwrite = %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, found %d entries", len(entries))
	}
}

func TestWriteFileModes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	dir := t.TempDir()

	script := filepath.Join(dir, "on-add-tour")
	if err := WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	st, err := os.Stat(script)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm() != 0o755 {
		t.Fatalf("mode = %v, want 0755", st.Mode().Perm())
	}

	// perm 0 keeps the existing mode.
	if err := WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	st, _ = os.Stat(script)
	if st.Mode().Perm() != 0o755 {
		t.Fatalf("mode after rewrite = %v, want 0755", st.Mode().Perm())
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "file.txt")
	if err := WriteFile(path, []byte("x"), 0); err == nil {
		t.Fatal("expected error when the parent directory does not exist")
	}
}
