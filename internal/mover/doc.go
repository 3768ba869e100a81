// SPDX-License-Identifier: MPL-2.0

// Package mover performs the rename step of a batch run.
//
// Three Mover implementations are available:
//   - rename: direct os.Rename (the default)
//   - native: runs the configured move command through the system POSIX
//     shell as `sh -c "CMD 'old' 'new'"`
//   - embedded: runs the same line through the in-process POSIX interpreter
//     (mvdan/sh), with no system shell dependency
//
// All movers implement the Mover interface with Name(), Validate(), and
// Move(). Movers that run an external command line also implement
// CommandMover, which exposes the exact line for dry-run display.
// Command lines are built with pkg/shellquote so arbitrary filenames survive
// the shell's word splitting.
package mover
