// Package paths resolves the filesystem locations tourtag works with:
// - the Taskwarrior data directory (e.g. "~/.task")
// - its hooks directory (e.g. "~/.task/hooks")
// - user-supplied paths that start with "~/"
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// TaskDataEnv is the Taskwarrior data directory override.
const TaskDataEnv = "TASKDATA"

// HooksDirName is the hooks directory inside the task data directory.
const HooksDirName = "hooks"

// TaskDataDir returns the Taskwarrior data directory with precedence:
//  1. override (e.g. the data: argument Taskwarrior passes to hooks)
//  2. $TASKDATA
//  3. ~/.task
func TaskDataDir(override string) string {
	if dir := strings.TrimSpace(override); dir != "" {
		return ExpandHome(dir)
	}
	if dir := strings.TrimSpace(os.Getenv(TaskDataEnv)); dir != "" {
		return ExpandHome(dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".task")
	}
	return ".task"
}

// HooksDir returns the hooks directory for a task data directory override.
func HooksDir(dataDirOverride string) string {
	return filepath.Join(TaskDataDir(dataDirOverride), HooksDirName)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths are returned cleaned of surrounding whitespace only.
//
// Examples:
// - "~/.task"   -> "/home/me/.task"
// - "~"         -> "/home/me"
// - "/etc/task" -> "/etc/task"
// - "~bob/x"    -> "~bob/x"
func ExpandHome(p string) string {
	p = strings.TrimSpace(p)
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, filepath.FromSlash(p[2:]))
}
