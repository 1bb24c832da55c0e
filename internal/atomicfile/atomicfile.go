// Package atomicfile replaces files without leaving partial writes behind.
//
// Category lists, config files and installed hook scripts are all read by
// other processes (Taskwarrior runs the hook on every add/modify), so a
// reader must see either the old content or the new content.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultPerm is used for new files when no mode is given.
const defaultPerm os.FileMode = 0o644

// WriteFile writes data to a temp file next to path, syncs it and renames it
// over path.
//
// With perm == 0 an existing file keeps its mode; new files get 0644.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = existingMode(path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	// Some filesystems reject chmod; the content still matters more.
	_ = tmp.Chmod(perm)
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}

func existingMode(path string) os.FileMode {
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() {
		return defaultPerm
	}
	return st.Mode().Perm()
}

// rename moves src over dst. Windows refuses to rename onto an existing file,
// so the second attempt removes dst first.
func rename(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if rmErr := os.Remove(dst); rmErr != nil && !os.IsNotExist(rmErr) {
		return err
	}
	if err2 := os.Rename(src, dst); err2 != nil {
		return err
	}
	return nil
}
