// SPDX-License-Identifier: MPL-2.0

package mover

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"renvo-cli/internal/issue"
	"renvo-cli/pkg/platform"
	"renvo-cli/pkg/types"
)

// NativeCommandMover runs the configured move command through the system
// POSIX shell as `sh -c "CMD 'old' 'new'"`.
type NativeCommandMover struct {
	// Command is the user-configured move command, e.g. "mv -v" or "git mv".
	Command string
	// Shell overrides the shell binary used to run the command line.
	Shell string

	sandboxType platform.SandboxType
}

// NewNativeCommandMover creates a native command mover for the given command.
func NewNativeCommandMover(command string) *NativeCommandMover {
	return &NativeCommandMover{
		Command:     command,
		sandboxType: platform.DetectSandbox(),
	}
}

// Name returns the mover name.
func (m *NativeCommandMover) Name() string {
	return "native"
}

// Validate checks that the command is set and a shell can be found.
func (m *NativeCommandMover) Validate() error {
	if strings.TrimSpace(m.Command) == "" {
		return fmt.Errorf("native command mover requires a non-empty command")
	}
	if _, err := m.getShell(); err != nil {
		return err
	}
	return nil
}

// CommandLine returns the exact shell line Move runs for this pair.
func (m *NativeCommandMover) CommandLine(oldPath, newPath string) string {
	return commandLine(m.Command, oldPath, newPath)
}

// Move runs the move command line for one file pair. A non-zero exit from
// the command is a normal Result, not an infrastructure error.
func (m *NativeCommandMover) Move(ctx context.Context, req Request) *Result {
	sh, err := m.getShell()
	if err != nil {
		return NewErrorResult(1, err)
	}

	argv := m.buildArgv(sh, m.CommandLine(req.OldPath, req.NewPath))
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = req.Stdout
	cmd.Stderr = req.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := errors.AsType[*exec.ExitError](err); ok {
			code := types.ExitCode(exitErr.ExitCode())
			if validateErr := code.Validate(); validateErr != nil {
				// Signal deaths report -1
				return NewErrorResult(1, fmt.Errorf("move command terminated abnormally: %w", err))
			}
			return NewExitCodeResult(code)
		}
		return NewErrorResult(1, fmt.Errorf("failed to run move command: %w", err))
	}

	return NewSuccessResult()
}

// buildArgv constructs the full argument vector. Inside a Flatpak or Snap
// sandbox the files live on the host, so the shell is spawned there via the
// sandbox's host-spawn mechanism.
func (m *NativeCommandMover) buildArgv(sh, line string) []string {
	base := []string{sh, "-c", line}

	spawn := platform.SpawnCommandFor(m.sandboxType)
	if spawn == "" {
		return base
	}

	argv := []string{spawn}
	argv = append(argv, platform.SpawnArgsFor(m.sandboxType)...)
	return append(argv, base...)
}

// getShell resolves the shell binary that runs the command line. The '\''
// quoting idiom requires a POSIX shell, so $SHELL is not consulted: it may
// point at fish or nushell.
func (m *NativeCommandMover) getShell() (string, error) {
	if m.Shell != "" {
		return m.Shell, nil
	}
	if sh, err := exec.LookPath("sh"); err == nil {
		return sh, nil
	}
	if bash, err := exec.LookPath("bash"); err == nil {
		return bash, nil
	}
	return "", m.shellNotFoundError([]string{"sh", "bash"})
}

// shellNotFoundError builds the actionable error for a missing POSIX shell.
func (m *NativeCommandMover) shellNotFoundError(attempted []string) error {
	return issue.NewErrorContext().
		WithOperation("find shell").
		WithResource("shells attempted: " + strings.Join(attempted, ", ")).
		WithSuggestion("Install a POSIX shell (sh or bash)").
		WithSuggestion("Run 'renvo config set shell embedded' to use the built-in interpreter instead").
		Wrap(fmt.Errorf("no shell found")).
		BuildError()
}
