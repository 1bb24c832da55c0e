// Package hook adapts the Taskwarrior hook protocol to the reconciler.
//
// Taskwarrior runs on-add hooks with one JSON task on stdin and on-modify
// hooks with two (original, then modified). The hook answers with the task
// to commit on stdout and feedback on stderr; a non-zero exit cancels the
// change.
package hook

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/tourtag/internal/reconcile"
	"github.com/aidanlsb/tourtag/internal/task"
)

// Kind is the lifecycle event that triggered the hook.
type Kind string

const (
	KindAdd    Kind = "add"
	KindModify Kind = "modify"
)

// Event is one decoded hook invocation.
type Event struct {
	Kind     Kind
	Previous *task.Record // nil for KindAdd
	Current  *task.Record
}

// Transition converts the event into reconciler input.
func (e Event) Transition() reconcile.Transition {
	if e.Kind == KindModify {
		return reconcile.Modified(e.Previous, e.Current)
	}
	return reconcile.Added(e.Current)
}

// maxLineSize bounds a single task line. Tasks with long annotation lists can
// exceed bufio's 64KiB default.
const maxLineSize = 4 << 20

// ReadEvent reads the task records from r. Blank lines are skipped. It
// returns ok == false when there are no records at all. With more than two
// records only the first two are used.
func ReadEvent(r io.Reader) (ev Event, ok bool, err error) {
	var lines [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return Event{}, false, fmt.Errorf("read hook input: %w", err)
	}

	switch len(lines) {
	case 0:
		return Event{}, false, nil
	case 1:
		current, err := task.Decode(lines[0])
		if err != nil {
			return Event{}, false, err
		}
		return Event{Kind: KindAdd, Current: current}, true, nil
	default:
		previous, err := task.Decode(lines[0])
		if err != nil {
			return Event{}, false, fmt.Errorf("original task: %w", err)
		}
		current, err := task.Decode(lines[1])
		if err != nil {
			return Event{}, false, fmt.Errorf("modified task: %w", err)
		}
		return Event{Kind: KindModify, Previous: previous, Current: current}, true, nil
	}
}

// Args holds the key:value arguments Taskwarrior passes to hooks, e.g.
// "api:2 args:'task add x' command:add rc:/home/me/.taskrc data:/home/me/.task version:2.6.2".
type Args map[string]string

// ParseArgs splits key:value arguments. Arguments without a colon are ignored.
func ParseArgs(argv []string) Args {
	out := make(Args, len(argv))
	for _, arg := range argv {
		key, value, ok := strings.Cut(arg, ":")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// DataDir returns the task data directory Taskwarrior reported, or "".
func (a Args) DataDir() string {
	return a["data"]
}

// Command returns the Taskwarrior command being run (add, modify, ...), or "".
func (a Args) Command() string {
	return a["command"]
}

// IsHookName reports whether a binary name is one of the hook entry points
// Taskwarrior calls, e.g. "on-add-tour" or "on-modify-tour".
func IsHookName(argv0 string) bool {
	base := strings.TrimSuffix(filepath.Base(argv0), filepath.Ext(argv0))
	return strings.HasPrefix(base, "on-add") || strings.HasPrefix(base, "on-modify")
}
