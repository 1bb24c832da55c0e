package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	// binaryPath caches the path to the built tourtag binary.
	binaryPath string
	buildMu    sync.Mutex
	buildErr   error
)

// CLIResult represents the result of running a CLI command with --json.
type CLIResult struct {
	OK       bool
	Data     map[string]interface{}
	Error    *CLIError
	Warnings []CLIWarning
	Meta     *CLIMeta
	RawJSON  string
	ExitCode int
}

// CLIError represents a structured error from the CLI.
type CLIError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Suggestion string                 `json:"suggestion,omitempty"`
}

// CLIWarning represents a warning from the CLI.
type CLIWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// CLIMeta contains metadata from the response.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// HookResult is the raw outcome of a hook invocation.
type HookResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// BuildCLI builds the tourtag binary and returns its path.
// This is called automatically by RunCLI and RunHook but can be called
// explicitly if you need the binary path for other purposes.
func BuildCLI(t *testing.T) string {
	t.Helper()

	buildMu.Lock()
	defer buildMu.Unlock()

	// Reuse previously built binary if it still exists.
	if binaryPath != "" {
		if _, err := os.Stat(binaryPath); err == nil {
			return binaryPath
		}
		binaryPath = ""
		buildErr = nil
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		buildErr = err
	} else {
		tmpDir, err := os.MkdirTemp("", "tourtag-cli-bin-*")
		if err != nil {
			buildErr = err
		} else {
			binName := "tourtag"
			if runtime.GOOS == "windows" {
				binName = "tourtag.exe"
			}

			binaryPath = filepath.Join(tmpDir, binName)
			cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tourtag")
			cmd.Dir = projectRoot
			output, err := cmd.CombinedOutput()
			if err != nil {
				buildErr = &BuildError{Output: string(output), Err: err}
				binaryPath = ""
			}
		}
	}

	if buildErr != nil {
		t.Fatalf("failed to build CLI: %v", buildErr)
	}

	return binaryPath
}

// BuildError represents an error building the CLI binary.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return e.Err.Error() + "\n" + e.Output
}

// findProjectRoot walks up the directory tree to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// RunCLI executes a command against the home with --config and --json and
// returns the parsed envelope.
func (h *TestHome) RunCLI(args ...string) *CLIResult {
	h.t.Helper()
	return h.RunCLIWithStdin("", args...)
}

// RunCLIWithStdin executes a CLI command with stdin input.
func (h *TestHome) RunCLIWithStdin(stdin string, args ...string) *CLIResult {
	h.t.Helper()

	binary := BuildCLI(h.t)
	cmdArgs := append([]string{"--config", h.ConfigPath, "--json"}, args...)

	cmd := exec.Command(binary, cmdArgs...)
	cmd.Env = h.Env()
	cmd.Stdin = strings.NewReader(stdin)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()

	result := &CLIResult{
		RawJSON:  stdout.String(),
		ExitCode: exitCode(err),
	}

	var resp struct {
		OK       bool                   `json:"ok"`
		Data     map[string]interface{} `json:"data,omitempty"`
		Error    *CLIError              `json:"error,omitempty"`
		Warnings []CLIWarning           `json:"warnings,omitempty"`
		Meta     *CLIMeta               `json:"meta,omitempty"`
	}

	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		result.OK = false
		result.Error = &CLIError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse JSON output: " + err.Error(),
			Details: map[string]interface{}{"raw": stdout.String()},
		}
		return result
	}

	result.OK = resp.OK
	result.Data = resp.Data
	result.Error = resp.Error
	result.Warnings = resp.Warnings
	result.Meta = resp.Meta

	return result
}

// RunHook runs 'tourtag hook' with the given stdin lines and Taskwarrior
// arguments.
func (h *TestHome) RunHook(stdin string, args ...string) *HookResult {
	h.t.Helper()
	return h.runHookBinary(BuildCLI(h.t), append([]string{"hook"}, args...), stdin, nil)
}

// RunHookAs runs the binary through a symlink with the given name, the way
// Taskwarrior runs hooks from its hooks directory.
func (h *TestHome) RunHookAs(name, stdin string, args ...string) *HookResult {
	h.t.Helper()

	link := filepath.Join(h.TaskData, "hooks", name)
	if _, err := os.Lstat(link); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
			h.t.Fatalf("failed to create hooks dir: %v", err)
		}
		if err := os.Symlink(BuildCLI(h.t), link); err != nil {
			h.t.Skipf("symlinks unavailable: %v", err)
		}
	}
	return h.runHookBinary(link, args, stdin, nil)
}

// RunHookWithEnv is RunHook with extra environment variables.
func (h *TestHome) RunHookWithEnv(env []string, stdin string, args ...string) *HookResult {
	h.t.Helper()
	return h.runHookBinary(BuildCLI(h.t), append([]string{"hook"}, args...), stdin, env)
}

func (h *TestHome) runHookBinary(binary string, args []string, stdin string, extraEnv []string) *HookResult {
	h.t.Helper()

	cmd := exec.Command(binary, args...)
	cmd.Env = append(h.Env(), extraEnv...)
	cmd.Dir = h.Path
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	return &HookResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(err),
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Task decodes the single JSON line a hook wrote to stdout.
func (r *HookResult) Task(t *testing.T) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimRight(r.Stdout, "\n"), "\n")
	if len(lines) != 1 || lines[0] == "" {
		t.Fatalf("expected exactly one task line on stdout, got %q (stderr: %s)", r.Stdout, r.Stderr)
	}
	var task map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &task); err != nil {
		t.Fatalf("hook output is not JSON: %v\nstdout: %s", err, r.Stdout)
	}
	return task
}

// Tags returns the tags of the task a hook wrote to stdout.
func (r *HookResult) Tags(t *testing.T) []string {
	t.Helper()
	raw, ok := r.Task(t)["tags"].([]interface{})
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// MustSucceed fails the test if the CLI command did not succeed.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		errMsg := "unknown error"
		if r.Error != nil {
			errMsg = r.Error.Code + ": " + r.Error.Message
		}
		t.Fatalf("expected command to succeed, got error: %s\nRaw output: %s", errMsg, r.RawJSON)
	}
	return r
}

// MustFail fails the test if the CLI command did not fail with the expected code.
func (r *CLIResult) MustFail(t *testing.T, expectedCode string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected command to fail with code %s, but it succeeded\nRaw output: %s", expectedCode, r.RawJSON)
	}
	if r.Error == nil {
		t.Fatalf("expected error with code %s, but error is nil\nRaw output: %s", expectedCode, r.RawJSON)
	}
	if r.Error.Code != expectedCode {
		t.Fatalf("expected error code %s, got %s: %s\nRaw output: %s", expectedCode, r.Error.Code, r.Error.Message, r.RawJSON)
	}
	return r
}

// DataList extracts a list from the Data field.
func (r *CLIResult) DataList(key string) []interface{} {
	if r.Data == nil {
		return nil
	}
	if list, ok := r.Data[key].([]interface{}); ok {
		return list
	}
	return nil
}

// DataStrings extracts a list of strings from the Data field.
func (r *CLIResult) DataStrings(key string) []string {
	list := r.DataList(key)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// DataString extracts a string from the Data field.
func (r *CLIResult) DataString(key string) string {
	if r.Data == nil {
		return ""
	}
	if s, ok := r.Data[key].(string); ok {
		return s
	}
	return ""
}
