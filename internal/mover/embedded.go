// SPDX-License-Identifier: MPL-2.0

package mover

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"renvo-cli/pkg/types"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// EmbeddedCommandMover runs the configured move command through the
// in-process POSIX shell interpreter (mvdan/sh). It needs no shell binary
// on the system; external programs named in the command still do.
type EmbeddedCommandMover struct {
	// Command is the user-configured move command, e.g. "mv -v" or "git mv".
	Command string
}

// NewEmbeddedCommandMover creates an embedded command mover for the given command.
func NewEmbeddedCommandMover(command string) *EmbeddedCommandMover {
	return &EmbeddedCommandMover{Command: command}
}

// Name returns the mover name.
func (m *EmbeddedCommandMover) Name() string {
	return "embedded"
}

// Validate parses the command line with placeholder operands, so a malformed
// command fails the run before any file is touched.
func (m *EmbeddedCommandMover) Validate() error {
	if strings.TrimSpace(m.Command) == "" {
		return fmt.Errorf("embedded command mover requires a non-empty command")
	}

	line := m.CommandLine("old", "new")
	if _, err := syntax.NewParser().Parse(strings.NewReader(line), "command"); err != nil {
		return fmt.Errorf("move command syntax error: %w", err)
	}
	return nil
}

// CommandLine returns the exact shell line Move runs for this pair.
func (m *EmbeddedCommandMover) CommandLine(oldPath, newPath string) string {
	return commandLine(m.Command, oldPath, newPath)
}

// Move runs the move command line for one file pair in the embedded shell.
func (m *EmbeddedCommandMover) Move(ctx context.Context, req Request) *Result {
	line := m.CommandLine(req.OldPath, req.NewPath)

	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "command")
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to parse move command line: %w", err))
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, req.Stdout, req.Stderr),
	)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to create embedded shell: %w", err))
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return NewExitCodeResult(types.ExitCode(exitStatus))
		}
		return NewErrorResult(1, fmt.Errorf("move command failed: %w", err))
	}

	return NewSuccessResult()
}
