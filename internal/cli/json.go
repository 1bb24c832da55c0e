// Package cli implements the tourtag command-line interface.
//
// Every command except the hook speaks two output modes. Text mode prints
// for people; --json wraps the result in a Response envelope on stdout so
// scripts can read data, warnings and errors the same way for every
// command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aidanlsb/tourtag/internal/ui"
)

// Set by the persistent --json flag.
var jsonOutput bool

// Response is the --json envelope.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo describes a failed command.
type ErrorInfo struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Warning is a problem that did not stop the command, such as falling back
// to the default categories.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// Meta carries counts for list-like results.
type Meta struct {
	Count int `json:"count,omitempty"`
}

func isJSONOutput() bool {
	return jsonOutput
}

func writeResponse(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func outputSuccess(data interface{}, meta *Meta) {
	outputSuccessWithWarnings(data, nil, meta)
}

func outputSuccessWithWarnings(data interface{}, warnings []Warning, meta *Meta) {
	writeResponse(Response{OK: true, Data: data, Warnings: warnings, Meta: meta})
}

// fail reports a command failure. In JSON mode the error goes into the
// envelope and nil is returned so cobra prints nothing more; in text mode
// err is handed back to cobra.
func fail(info ErrorInfo, err error) error {
	if !jsonOutput {
		return err
	}
	writeResponse(Response{Error: &info})
	return nil
}

func handleError(code string, err error, suggestion string) error {
	return fail(ErrorInfo{Code: code, Message: err.Error(), Suggestion: suggestion}, err)
}

func handleErrorMsg(code, message, suggestion string) error {
	return fail(ErrorInfo{Code: code, Message: message, Suggestion: suggestion}, errors.New(message))
}

func handleErrorWithDetails(code, message, suggestion string, details interface{}) error {
	return fail(ErrorInfo{Code: code, Message: message, Details: details, Suggestion: suggestion}, errors.New(message))
}

// emitWarning prints w to stderr in text mode. JSON callers put warnings in
// the envelope instead.
func emitWarning(w Warning) {
	if jsonOutput {
		return
	}
	msg := fmt.Sprintf("%s: %s", w.Code, w.Message)
	if w.Path != "" {
		msg += " " + ui.Hint("("+w.Path+")")
	}
	fmt.Fprintln(os.Stderr, ui.Warning(msg))
}
