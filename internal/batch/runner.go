// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"renvo-cli/internal/mover"
	"renvo-cli/internal/rule"
	"renvo-cli/internal/transform"
	"renvo-cli/pkg/platform"
	"renvo-cli/pkg/types"
)

type (
	// Options configures one batch run.
	Options struct {
		// DryRun reports planned renames without touching the filesystem.
		DryRun bool
		// Force allows overwriting an existing destination.
		Force bool
		// MakeDirs creates missing destination directories before renaming.
		MakeDirs bool
		// Quiet suppresses all non-error output.
		Quiet bool
		// Verbose enables per-file reporting and debug logging.
		Verbose bool

		// Stdout receives per-file outcome lines and the summary.
		// Defaults to os.Stdout.
		Stdout io.Writer
		// Stderr receives diagnostics and move command error output.
		// Defaults to os.Stderr.
		Stderr io.Writer
	}

	// Runner drives one batch over a list of file operands. Files are
	// processed sequentially in input order; the serial counter inside
	// the transform context and the directory set below are the only
	// state carried from one file to the next.
	Runner struct {
		program  *rule.Program
		tctx     *transform.Context
		mover    mover.Mover
		cmdMover mover.CommandMover
		opts     Options
		logger   *log.Logger
		report   *reporter

		// madeDirs holds directories created or confirmed to exist during
		// this run, so each is attempted at most once.
		madeDirs map[string]struct{}
	}
)

// NewRunner builds a Runner around a compiled rule, the per-run transform
// context, and the mover that will perform the renames.
func NewRunner(program *rule.Program, tctx *transform.Context, mv mover.Mover, opts Options) *Runner {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger := log.NewWithOptions(opts.Stderr, log.Options{
		Prefix: "renvo",
	})
	switch {
	case opts.Quiet:
		logger.SetLevel(log.ErrorLevel)
	case opts.Verbose:
		logger.SetLevel(log.DebugLevel)
		tctx.Trace = func(stmt, result string) {
			logger.Debug("rule step", "stmt", stmt, "name", result)
		}
	}

	return &Runner{
		program:  program,
		tctx:     tctx,
		mover:    mv,
		cmdMover: mover.GetCommandMover(mv),
		opts:     opts,
		logger:   logger,
		report:   newReporter(opts.Stdout, opts),
		madeDirs: make(map[string]struct{}),
	}
}

// Run processes every file and returns the aggregate counters. The error
// is nil even when individual files failed; stats.ExitCode() reports
// those. A non-nil error means the run was aborted: an unusable mover, a
// rule runtime error, or a cancelled context.
func (r *Runner) Run(ctx context.Context, files []string) (*RunStats, error) {
	stats := &RunStats{Total: len(files)}

	if err := r.mover.Validate(); err != nil {
		return stats, fmt.Errorf("move command not usable: %w", err)
	}

	r.logger.Debug("starting batch",
		"rule", r.program.Source(), "steps", r.program.Steps(),
		"files", stats.Total, "mover", r.mover.Name())

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("batch interrupted",
				"processed", stats.Renamed+stats.Skipped+stats.Failed, "total", stats.Total)
			return stats, fmt.Errorf("batch interrupted: %w", err)
		}
		if err := r.processFile(ctx, name, stats); err != nil {
			return stats, err
		}
	}

	r.report.summary(stats)
	return stats, nil
}

// processFile takes one operand through the full pipeline: validate,
// apply the rule, check the destination, create directories, rename.
// Per-file failures are recorded in stats and return nil so the batch
// moves on; only a rule runtime error propagates.
func (r *Runner) processFile(ctx context.Context, name string, stats *RunStats) error {
	if ok, errs := types.FilesystemPath(name).IsValid(); !ok {
		r.fail(stats, "invalid file operand", "file", name, "err", errs[0])
		return nil
	}

	res, err := r.program.Apply(r.tctx, name)
	if err != nil {
		// A runtime fault in the rule would repeat on every later file,
		// so the whole run stops here.
		return fmt.Errorf("processing %s: %w", name, err)
	}
	if res.Lookup != nil {
		r.logger.Warn("lookup failed, file left untouched", "file", name, "err", res.Lookup.Err)
		stats.Failed++
		return nil
	}

	newName := res.Name
	if newName == name {
		r.logger.Debug("name unchanged, skipping", "file", name)
		stats.Skipped++
		return nil
	}

	if part, reserved := reservedComponent(newName); reserved {
		if runtime.GOOS == platform.Windows {
			r.fail(stats, "destination uses a name Windows reserves",
				"file", name, "dest", newName, "component", part)
			return nil
		}
		// Elsewhere the rename is legal; warn because the resulting tree
		// cannot be checked out on Windows.
		r.logger.Warn("destination name is reserved on Windows",
			"dest", newName, "component", part)
	}

	if !r.opts.Force {
		// Lstat, matching the unique transform's probe: a dangling
		// symlink at the destination still counts as occupied. When the
		// probe finds the source itself, this is a case-only rename on a
		// case-insensitive filesystem, which os.Rename handles in place.
		if dstInfo, err := os.Lstat(newName); err == nil {
			srcInfo, serr := os.Lstat(name)
			if serr != nil || !os.SameFile(srcInfo, dstInfo) {
				stats.Collisions++
				r.fail(stats, "destination already exists", "file", name, "dest", newName)
				return nil
			}
		}
	}

	if r.opts.DryRun {
		r.report.filePlanned(name, newName, r.commandLine(name, newName))
		stats.Renamed++
		return nil
	}

	if err := r.ensureDir(newName); err != nil {
		r.fail(stats, "cannot create destination directory",
			"file", name, "dest", newName, "err", err)
		return nil
	}

	result := r.mover.Move(ctx, mover.Request{
		OldPath: name,
		NewPath: newName,
		Stdout:  r.opts.Stdout,
		Stderr:  r.opts.Stderr,
	})
	if !result.Success() {
		if r.cmdMover != nil {
			stats.MoveFailures++
		}
		keyvals := []any{"file", name, "dest", newName, "mover", r.mover.Name()}
		if result.ExitCode != 0 {
			keyvals = append(keyvals, "exit", int(result.ExitCode))
		}
		if result.Error != nil {
			keyvals = append(keyvals, "err", result.Error)
		}
		r.fail(stats, "rename failed", keyvals...)
		return nil
	}

	stats.Renamed++
	r.report.fileRenamed(name, newName)
	return nil
}

// fail records one per-file failure: an error diagnostic plus the Failed
// counter. The run continues with the next file.
func (r *Runner) fail(stats *RunStats, msg string, keyvals ...any) {
	r.logger.Error(msg, keyvals...)
	stats.Failed++
}

// ensureDir creates the destination's directory when MakeDirs is on.
// Directories already created or confirmed during this run are skipped.
func (r *Runner) ensureDir(newName string) error {
	if !r.opts.MakeDirs {
		return nil
	}
	dir := filepath.Dir(newName)
	if dir == "." {
		return nil
	}
	if _, seen := r.madeDirs[dir]; seen {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	r.madeDirs[dir] = struct{}{}
	r.logger.Debug("created destination directory", "dir", dir)
	return nil
}

// commandLine returns the exact line the configured command mover would
// run for this pair, or "" for the built-in rename.
func (r *Runner) commandLine(oldName, newName string) string {
	if r.cmdMover == nil {
		return ""
	}
	return r.cmdMover.CommandLine(oldName, newName)
}

// reservedComponent returns the first component of path that Windows
// refuses as a file or directory name, if any.
func reservedComponent(path string) (string, bool) {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if platform.IsWindowsReservedName(part) {
			return part, true
		}
	}
	return "", false
}
