package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/atomicfile"
	"github.com/aidanlsb/tourtag/internal/shellquote"
	"github.com/aidanlsb/tourtag/internal/ui"
)

// Hook script names. Taskwarrior runs every executable whose name starts
// with on-add / on-modify.
const (
	onAddScript    = "on-add-tour"
	onModifyScript = "on-modify-tour"
)

var (
	installHooksDir string
	installBinary   string
	installForce    bool
)

// executablePath is swapped out in tests.
var executablePath = os.Executable

type installedScript struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Status string `json:"status"` // created, updated, unchanged
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Taskwarrior on-add / on-modify hooks",
	Long: `Write on-add-tour and on-modify-tour into the Taskwarrior hooks
directory. Each is a small sh script that runs 'tourtag hook'.

The hooks directory is --hooks-dir, then hooks_dir in config.toml, then
hooks/ inside $TASKDATA or ~/.task. A --categories or --config given here
is baked into the scripts.

Existing scripts with different content are only replaced with --force
(or after confirmation in a terminal).`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		binary, err := resolveInstallBinary()
		if err != nil {
			return handleError(ErrInternal, err, "Pass --binary /path/to/tourtag")
		}

		dir := getConfig().HooksPath(installHooksDir)
		var warnings []Warning
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			warnings = append(warnings, Warning{
				Code:    WarnHooksDirMissing,
				Message: "hooks directory did not exist and was created",
				Path:    dir,
			})
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		script := hookScript(binary, hookScriptFlags())
		var results []installedScript
		for _, name := range []string{onAddScript, onModifyScript} {
			path := filepath.Join(dir, name)
			status, err := installScript(path, script)
			if err != nil {
				if os.IsExist(err) {
					return handleErrorMsg(ErrFileExists,
						fmt.Sprintf("%s already exists with different content", path),
						"Re-run with --force to replace it")
				}
				return handleError(ErrFileWriteError, err, "")
			}
			results = append(results, installedScript{Name: name, Path: path, Status: status})
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"hooks_dir": dir,
				"binary":    binary,
				"scripts":   results,
			}, warnings, &Meta{Count: len(results)})
			return nil
		}

		for _, w := range warnings {
			emitWarning(w)
		}
		for _, r := range results {
			if r.Status == "unchanged" {
				fmt.Println(ui.Infof("%s is up to date", ui.FilePath(r.Path)))
				continue
			}
			verb := "Installed"
			if r.Status == "updated" {
				verb = "Updated"
			}
			fmt.Println(ui.Successf("%s %s", verb, ui.FilePath(r.Path)))
		}
		return nil
	},
}

func resolveInstallBinary() (string, error) {
	if v := strings.TrimSpace(installBinary); v != "" {
		return filepath.Abs(v)
	}
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locate tourtag binary: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// hookScriptFlags returns the global flags to bake into the scripts.
func hookScriptFlags() []string {
	var flags []string
	if v := strings.TrimSpace(configPath); v != "" {
		if abs, err := filepath.Abs(v); err == nil {
			v = abs
		}
		flags = append(flags, "--config", v)
	}
	if v := strings.TrimSpace(categoriesFlag); v != "" {
		if abs, err := filepath.Abs(v); err == nil {
			v = abs
		}
		flags = append(flags, "--categories", v)
	}
	return flags
}

func hookScript(binary string, flags []string) []byte {
	args := append([]string{binary, hookCmd.Name()}, flags...)
	var buf bytes.Buffer
	buf.WriteString("#!/bin/sh\n")
	buf.WriteString("# Installed by 'tourtag install'. Re-run it to update.\n")
	fmt.Fprintf(&buf, "exec %s \"$@\"\n", shellquote.Join(args...))
	return buf.Bytes()
}

// installScript writes content to path and reports created, updated or
// unchanged. A differing file is only replaced with --force or after
// confirmation; otherwise an os.ErrExist error is returned.
func installScript(path string, content []byte) (string, error) {
	status := "created"
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		// keep the file but make sure it is executable
		if err := os.Chmod(path, 0o755); err != nil {
			return "", err
		}
		return "unchanged", nil
	case err == nil:
		if !installForce && !promptForConfirm(fmt.Sprintf("Replace %s?", path)) {
			return "", &os.PathError{Op: "install", Path: path, Err: os.ErrExist}
		}
		status = "updated"
	case !os.IsNotExist(err):
		return "", err
	}

	if err := atomicfile.WriteFile(path, content, 0o755); err != nil {
		return "", err
	}
	return status, nil
}

func init() {
	installCmd.Flags().StringVar(&installHooksDir, "hooks-dir", "", "Taskwarrior hooks directory (overrides hooks_dir in config)")
	installCmd.Flags().StringVar(&installBinary, "binary", "", "tourtag binary the scripts should run (default: this executable)")
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false, "Replace existing scripts")
	rootCmd.AddCommand(installCmd)
}
