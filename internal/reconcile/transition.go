package reconcile

import "github.com/aidanlsb/tourtag/internal/task"

// Transition is one task lifecycle event: either a newly added task with no
// previous state, or a modification from a previous record to a current one.
// Build it with Added or Modified.
type Transition struct {
	previous *task.Record
	current  *task.Record
}

// Added describes a task being created.
func Added(current *task.Record) Transition {
	return Transition{current: orEmpty(current)}
}

// Modified describes a task changing from previous to current.
func Modified(previous, current *task.Record) Transition {
	return Transition{previous: orEmpty(previous), current: orEmpty(current)}
}

// Current returns the record being written.
func (t Transition) Current() *task.Record {
	if t.current == nil {
		return task.New("")
	}
	return t.current
}

// ProjectChange returns the previous project and whether the project changed.
// Added transitions never count as a change.
func (t Transition) ProjectChange() (previous string, changed bool) {
	if t.previous == nil {
		return "", false
	}
	return t.previous.Project, t.previous.Project != t.Current().Project
}

func orEmpty(r *task.Record) *task.Record {
	if r == nil {
		return task.New("")
	}
	return r
}
