// Package reconcile keeps a task's tour tags in step with its project.
//
// Reconcile strips tags derived from the previous project, adds tags derived
// from the current one, and leaves every other tag alone. It performs no I/O.
package reconcile

import (
	"strings"

	"github.com/aidanlsb/tourtag/internal/task"
	"github.com/aidanlsb/tourtag/internal/tour"
)

// FeedbackPrefix marks every message produced by the hook.
const FeedbackPrefix = "[tour hook] "

// feedbackSeparator joins feedback fragments into a single line.
const feedbackSeparator = " | "

// Advisory is appended when a task carries +work outside a tour project.
const Advisory = "💡 If this task is related to a tour/show, make sure to add it to a tour project"

// RejectionMessage is returned, unprefixed, when the project is the bare
// root marker.
var RejectionMessage = strings.Join([]string{
	"⚠️  Project 'tour' requires at least one sub-level.",
	"   Please include at least one of the following: Tour Name, Venue, Task Category",
	"",
	"   Examples:",
	"     project:tour.tmck                      (tour name)",
	"     project:tour.logistics                 (standalone category)",
	"     project:tour.tmck.the_pageant          (tour + venue)",
	"     project:tour.tmck.the_pageant.advance  (tour + venue + category)",
}, "\n")

// Verdict tells the transport whether to commit the change.
type Verdict int

const (
	Accept Verdict = iota
	Reject
)

func (v Verdict) String() string {
	if v == Reject {
		return "reject"
	}
	return "accept"
}

// Outcome is the result of reconciling one transition.
type Outcome struct {
	// Task is the current record. Its tags are rewritten on Accept and left
	// untouched on Reject.
	Task *task.Record

	// Feedback is the human-readable summary, or "" when nothing changed.
	Feedback string

	Verdict Verdict

	// Removed and Added list the tags changed, in sorted order.
	Removed []string
	Added   []string

	// Advised is set when the advisory line was emitted.
	Advised bool
}

// Reconcile applies the tour tagging rules to a transition.
//
// Removal is computed from the previous project before addition is computed
// from the current one, so renaming tour.x.logistics to tour.x.advance drops
// tour.logistics while keeping the shared tour name.
func Reconcile(t Transition, categories tour.CategorySet) Outcome {
	current := t.Current()
	currentPath := tour.ParsePath(current.Project)

	if currentPath.IsBareRoot() {
		return Outcome{
			Task:     current,
			Feedback: RejectionMessage,
			Verdict:  Reject,
		}
	}

	tags := tour.NewTagSet(current.Tags...)
	out := Outcome{Task: current, Verdict: Accept}
	var fragments []string

	if previous, changed := t.ProjectChange(); changed && previous != "" {
		old := tour.Classify(tour.ParsePath(previous), categories)
		for _, tag := range old.Removable.Sorted() {
			if tags.Remove(tag) {
				out.Removed = append(out.Removed, tag)
			}
		}
		if len(out.Removed) > 0 {
			fragments = append(fragments, "Removed: "+joinMarked("-", out.Removed))
		}
	}

	if currentPath.IsClassifiable() {
		derived := tour.Classify(currentPath, categories)
		for _, tag := range derived.All.Sorted() {
			if tags.Add(tag) {
				out.Added = append(out.Added, tag)
			}
		}
		if len(out.Added) > 0 {
			fragments = append(fragments, "Added: "+joinMarked("+", out.Added))
		}
	}

	if tags.Has(tour.TagWork) && !currentPath.IsClassifiable() {
		fragments = append(fragments, Advisory)
		out.Advised = true
	}

	current.SetTags(tags.Sorted())
	if len(fragments) > 0 {
		out.Feedback = FeedbackPrefix + strings.Join(fragments, feedbackSeparator)
	}
	return out
}

func joinMarked(mark string, tags []string) string {
	marked := make([]string, len(tags))
	for i, tag := range tags {
		marked[i] = mark + tag
	}
	return strings.Join(marked, ", ")
}
