// Package task decodes and encodes Taskwarrior task records.
//
// Only the project and tags fields are interpreted. Every other field is kept
// as raw JSON and written back unchanged.
package task

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	fieldProject = "project"
	fieldTags    = "tags"
)

// Record is a single task. Project and Tags are the only fields the hook
// reads or rewrites.
type Record struct {
	Project string
	Tags    []string

	// hasTags tracks whether the input carried a tags field, so records the
	// hook leaves alone can round-trip without gaining one.
	hasTags bool
	fields  map[string]json.RawMessage
}

// New creates a record with the given project and tags.
func New(project string, tags ...string) *Record {
	r := &Record{Project: project, fields: map[string]json.RawMessage{}}
	if len(tags) > 0 {
		r.SetTags(tags)
	}
	return r
}

// Decode parses a single JSON object. A project or tags field of the wrong
// type is treated as absent.
func Decode(data []byte) (*Record, error) {
	data = bytes.TrimSpace(data)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("decode task: expected a JSON object")
	}

	r := &Record{fields: fields}
	if raw, ok := fields[fieldProject]; ok {
		var project string
		if err := json.Unmarshal(raw, &project); err == nil {
			r.Project = project
		}
	}
	if raw, ok := fields[fieldTags]; ok {
		var tags []string
		if err := json.Unmarshal(raw, &tags); err == nil {
			r.Tags = tags
			r.hasTags = true
		}
	}
	return r, nil
}

// SetTags replaces the tag list.
func (r *Record) SetTags(tags []string) {
	r.Tags = make([]string, len(tags))
	copy(r.Tags, tags)
	r.hasTags = true
}

// MarshalJSON writes the record back as a single JSON object with all
// original fields preserved. Keys are emitted in sorted order.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.fields)+2)
	for k, v := range r.fields {
		out[k] = v
	}

	// An empty project leaves whatever the input carried (absent, "" or a
	// value of the wrong type) untouched.
	if r.Project != "" {
		raw, err := json.Marshal(r.Project)
		if err != nil {
			return nil, err
		}
		out[fieldProject] = raw
	}

	if r.hasTags {
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		raw, err := json.Marshal(tags)
		if err != nil {
			return nil, err
		}
		out[fieldTags] = raw
	}

	return json.Marshal(out)
}

// Encode returns the record as one line of compact JSON without a trailing
// newline.
func (r *Record) Encode() ([]byte, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode task: %w", err)
	}
	return data, nil
}
