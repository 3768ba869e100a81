// SPDX-License-Identifier: MPL-2.0

package mover

import (
	"context"
	"fmt"
	"io"
	"strings"

	"renvo-cli/pkg/shellquote"
	"renvo-cli/pkg/types"
)

// Shell mode constants for external move command execution.
const (
	// ShellNative runs the move command through the system POSIX shell.
	ShellNative Shell = "native"
	// ShellEmbedded runs the move command through the in-process interpreter.
	ShellEmbedded Shell = "embedded"
)

type (
	// Shell selects how an external move command is executed.
	Shell string

	// Request describes one rename action.
	Request struct {
		// OldPath is the file's current path.
		OldPath string
		// NewPath is the destination path.
		NewPath string
		// Stdout receives the move command's standard output.
		Stdout io.Writer
		// Stderr receives the move command's standard error.
		Stderr io.Writer
	}

	// Result contains the outcome of one rename action.
	Result struct {
		// ExitCode is the exit code of the move command (0 for the built-in rename).
		ExitCode types.ExitCode
		// Error contains any error that occurred.
		Error error
	}

	// Mover defines the interface for performing one rename action.
	Mover interface {
		// Name returns the mover name for diagnostics.
		Name() string
		// Validate checks the mover's configuration before any file is touched.
		Validate() error
		// Move renames one file from req.OldPath to req.NewPath.
		Move(ctx context.Context, req Request) *Result
	}

	// CommandMover is implemented by movers that run an external command line.
	CommandMover interface {
		Mover

		// CommandLine returns the exact shell line Move would run for this pair.
		CommandLine(oldPath, newPath string) string
	}
)

// Select returns the Mover for the given configuration: the built-in rename
// when command is empty, otherwise a command mover chosen by shell.
func Select(command string, shell Shell) (Mover, error) {
	if strings.TrimSpace(command) == "" {
		return NewRenameMover(), nil
	}
	switch shell {
	case ShellNative:
		return NewNativeCommandMover(command), nil
	case ShellEmbedded:
		return NewEmbeddedCommandMover(command), nil
	default:
		return nil, fmt.Errorf("unknown shell %q (valid: native, embedded)", shell)
	}
}

// GetCommandMover returns the mover as a CommandMover if it runs an external
// command line, otherwise nil.
func GetCommandMover(m Mover) CommandMover {
	if cm, ok := m.(CommandMover); ok {
		return cm
	}
	return nil
}

// commandLine builds the shell line `CMD <quoted-old> <quoted-new>`. The
// command is user shell text and appears verbatim; the paths are quoted so
// they survive word splitting no matter what characters they contain.
func commandLine(command, oldPath, newPath string) string {
	return command + " " + shellquote.Join(oldPath, newPath)
}

// Success returns true if the rename action succeeded.
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code types.ExitCode) *Result {
	return &Result{ExitCode: code}
}
