// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath represents a path handed to the renamer as a rename
	// source. A valid path must be non-empty, not whitespace-only, must not
	// end in a path separator, and its final element must not be "." or ".."
	// (those cannot be renamed). The zero value ("") is invalid.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value
	// cannot be used as a rename source.
	InvalidFilesystemPathError struct {
		Value  FilesystemPath
		Reason string
	}
)

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// IsValid returns whether the FilesystemPath can be used as a rename source.
func (p FilesystemPath) IsValid() (bool, []error) {
	s := string(p)
	switch {
	case strings.TrimSpace(s) == "":
		return false, []error{&InvalidFilesystemPathError{Value: p, Reason: "must be non-empty"}}
	case strings.HasSuffix(s, "/"):
		return false, []error{&InvalidFilesystemPathError{Value: p, Reason: "must not end in a path separator"}}
	case filepath.Base(s) == "." || filepath.Base(s) == "..":
		return false, []error{&InvalidFilesystemPathError{Value: p, Reason: `"." and ".." cannot be renamed`}}
	default:
		return true, nil
	}
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
