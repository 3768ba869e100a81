// SPDX-License-Identifier: MPL-2.0

package rule

import (
	"errors"

	"renvo-cli/internal/transform"
)

type (
	// stepFunc runs one compiled statement against a candidate name. It
	// returns the rewritten name, whether the pipeline should stop here,
	// and any runtime error.
	stepFunc func(tc *transform.Context, name string) (string, bool, error)

	// step pairs a compiled statement with its source text, so Apply can
	// report what each statement produced.
	step struct {
		text string
		run  stepFunc
	}

	// Program is a compiled rule. Compile it once, then apply it to every
	// file in the batch; the only mutable state lives in the
	// transform.Context passed to Apply.
	Program struct {
		source string
		steps  []step
	}

	// Result is the outcome of applying a Program to one name. When a
	// filesystem lookup failed mid-pipeline, Lookup carries the failure,
	// Name falls back to the untouched input, and Stopped is set so the
	// caller knows later steps never ran.
	Result struct {
		Name    string
		Stopped bool
		Lookup  *transform.LookupError
	}
)

// Source returns the combined rule source the program was compiled from.
func (p *Program) Source() string { return p.source }

// Steps returns the number of compiled statements.
func (p *Program) Steps() int { return len(p.steps) }

// Apply runs the pipeline over name. A lookup failure (stat on the
// candidate name) is reported through the Result rather than the error
// return, because the caller can still continue with the remaining files.
// Any other step error is a rule runtime error and aborts the whole run.
// When the Context carries a Trace hook, it fires after every executed
// statement with the statement text and the name it produced.
func (p *Program) Apply(tc *transform.Context, name string) (Result, error) {
	current := name
	for _, st := range p.steps {
		next, stop, err := st.run(tc, current)
		if err != nil {
			var le *transform.LookupError
			if errors.As(err, &le) {
				return Result{Name: name, Stopped: true, Lookup: le}, nil
			}
			return Result{}, &RuntimeError{Name: current, Err: err}
		}
		current = next
		if tc.Trace != nil {
			tc.Trace(st.text, current)
		}
		if stop {
			return Result{Name: current, Stopped: true}, nil
		}
	}
	return Result{Name: current}, nil
}
