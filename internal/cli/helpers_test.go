package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	outputCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		outputCh <- buf.String()
	}()

	defer func() {
		os.Stdout = orig
	}()
	fn()
	_ = w.Close()
	return <-outputCh
}

// isolateEnv points HOME, TASKDATA and the config dir at a temp directory
// and resets global flags.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("TASKDATA", filepath.Join(home, ".task"))
	t.Setenv(hookNoHooksEnv, "")
	t.Setenv(hookDebugEnv, "")

	prevConfig, prevCategories, prevJSON, prevCfg := configPath, categoriesFlag, jsonOutput, cfg
	prevStdin, prevStdout := stdinIsTerminal, stdoutIsTerminal
	t.Cleanup(func() {
		configPath, categoriesFlag, jsonOutput, cfg = prevConfig, prevCategories, prevJSON, prevCfg
		stdinIsTerminal, stdoutIsTerminal = prevStdin, prevStdout
	})
	configPath = ""
	categoriesFlag = ""
	jsonOutput = false
	cfg = nil
	stdinIsTerminal = func() bool { return false }
	stdoutIsTerminal = func() bool { return false }
	return home
}

func decodeResponse(t *testing.T, out string) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON envelope: %v\n%s", err, out)
	}
	return resp
}

func responseData(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %T: %v", resp.Data, resp.Data)
	}
	return data
}
