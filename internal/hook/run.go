package hook

import (
	"fmt"
	"io"

	"github.com/aidanlsb/tourtag/internal/reconcile"
	"github.com/aidanlsb/tourtag/internal/tour"
)

// Exit codes returned by Run.
const (
	ExitOK     = 0
	ExitReject = 1
)

// Options configures a hook run.
type Options struct {
	// Categories is the recognized category set, loaded once by the caller.
	Categories tour.CategorySet

	// PassThrough echoes the current task unchanged without applying any
	// rules (set when hooks are suppressed).
	PassThrough bool

	// Trace, when non-nil, receives a one-line summary of the run.
	Trace io.Writer

	// CategorySource describes where Categories came from, for Trace only.
	CategorySource string

	// Command is the Taskwarrior command that fired the hook (Args.Command),
	// for Trace only.
	Command string
}

// Run processes one hook invocation and returns the process exit code.
//
// On accept the (possibly re-tagged) current task is written to stdout as a
// single JSON line and any feedback goes to stderr. On reject nothing is
// written to stdout and only the feedback is written to stderr.
func Run(in io.Reader, stdout, stderr io.Writer, opts Options) int {
	ev, ok, err := ReadEvent(in)
	if err != nil {
		fmt.Fprintf(stderr, "%sinvalid task JSON: %v\n", reconcile.FeedbackPrefix, err)
		opts.trace("event=invalid error=%q", err)
		return ExitReject
	}
	if !ok {
		opts.trace("event=empty")
		return ExitOK
	}

	if opts.PassThrough {
		opts.trace("event=%s passthrough=true", ev.Kind)
		return writeTask(stdout, stderr, ev, "")
	}

	out := reconcile.Reconcile(ev.Transition(), opts.Categories)
	opts.trace("event=%s command=%s project=%q categories=%s verdict=%s added=%d removed=%d",
		ev.Kind, opts.Command, out.Task.Project, opts.CategorySource, out.Verdict, len(out.Added), len(out.Removed))

	if out.Verdict == reconcile.Reject {
		fmt.Fprintln(stderr, out.Feedback)
		return ExitReject
	}
	return writeTask(stdout, stderr, ev, out.Feedback)
}

func writeTask(stdout, stderr io.Writer, ev Event, feedback string) int {
	data, err := ev.Current.Encode()
	if err != nil {
		fmt.Fprintf(stderr, "%s%v\n", reconcile.FeedbackPrefix, err)
		return ExitReject
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", data); err != nil {
		return ExitReject
	}
	if feedback != "" {
		fmt.Fprintln(stderr, feedback)
	}
	return ExitOK
}

func (o Options) trace(format string, args ...interface{}) {
	if o.Trace == nil {
		return
	}
	fmt.Fprintf(o.Trace, "tourtag: "+format+"\n", args...)
}
