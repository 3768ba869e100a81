// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrLookup is the sentinel error wrapped by LookupError.
var ErrLookup = errors.New("filesystem lookup failed")

type (
	// ExistsFunc reports whether a path exists on disk. Dangling symlinks
	// count as existing: a rename onto one would still clobber it.
	ExistsFunc func(path string) bool

	// ModTimeFunc returns a path's last-modification time.
	ModTimeFunc func(path string) (time.Time, error)

	// Context carries the state and filesystem probes shared by every rule
	// application in a run. One Context is created per process invocation
	// and passed into each per-file application; nothing else may leak
	// between files.
	Context struct {
		// CleanMode selects how Clean deals with unsafe characters.
		CleanMode CleanMode

		// Exists is the existence probe used by Unique.
		Exists ExistsFunc

		// ModTime is the modification-time probe used by ByDate.
		ModTime ModTimeFunc

		// Trace, when non-nil, is invoked after each executed rule
		// statement with the statement text and the name it produced.
		Trace func(stmt, result string)

		// serial is the process-wide renumber counter. It starts at 0 and
		// is incremented once per Renumber invocation, regardless of which
		// file triggered it.
		serial int
	}

	// LookupError reports a failed filesystem probe. It is recovered at the
	// rule-application boundary: the affected file keeps its name and the
	// run continues, marked failed.
	LookupError struct {
		Path string
		Err  error
	}
)

// NewContext returns a Context with the given clean mode and probes backed
// by the real filesystem.
func NewContext(mode CleanMode) *Context {
	return &Context{
		CleanMode: mode,
		Exists: func(path string) bool {
			_, err := os.Lstat(path)
			return err == nil
		},
		ModTime: func(path string) (time.Time, error) {
			info, err := os.Stat(path)
			if err != nil {
				return time.Time{}, err
			}
			return info.ModTime(), nil
		},
	}
}

// NextSerial increments and returns the process-wide renumber counter.
// The first call returns 1.
func (tc *Context) NextSerial() int {
	tc.serial++
	return tc.serial
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("cannot stat %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrLookup so callers can use errors.Is for programmatic detection.
func (e *LookupError) Unwrap() error { return ErrLookup }
