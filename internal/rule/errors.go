// SPDX-License-Identifier: MPL-2.0

package rule

import (
	"errors"
	"fmt"
)

// ErrCompile is the sentinel error wrapped by CompileError.
var ErrCompile = errors.New("rule does not compile")

// CompileError reports a rule that failed to parse or validate. It is fatal
// to the whole invocation: no files are touched when compilation fails.
type CompileError struct {
	// Stmt is the offending statement text, empty when the rule as a whole
	// is at fault (for example, an empty rule).
	Stmt string
	// Offset is the byte offset of the statement within the joined rule
	// source.
	Offset int
	// Detail describes what is wrong.
	Detail string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Stmt == "" {
		return "rule: " + e.Detail
	}
	return fmt.Sprintf("rule statement %q at offset %d: %s", e.Stmt, e.Offset, e.Detail)
}

// Unwrap returns ErrCompile so callers can use errors.Is for programmatic detection.
func (e *CompileError) Unwrap() error { return ErrCompile }

// ErrRuntime is the sentinel error wrapped by RuntimeError.
var ErrRuntime = errors.New("rule runtime error")

// RuntimeError reports a statement that failed while running against a
// candidate name. It aborts the whole batch, because the same fault would
// repeat on every later file.
type RuntimeError struct {
	// Name is the candidate name the pipeline was processing.
	Name string
	// Err is the underlying step failure.
	Err error
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("rule runtime error on %q: %v", e.Name, e.Err)
}

// Unwrap returns ErrRuntime and the underlying step error so callers can
// match either with errors.Is.
func (e *RuntimeError) Unwrap() []error { return []error{ErrRuntime, e.Err} }
