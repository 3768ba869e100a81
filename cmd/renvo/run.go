// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"renvo-cli/internal/batch"
	"renvo-cli/internal/config"
	"renvo-cli/internal/issue"
	"renvo-cli/internal/mover"
	"renvo-cli/internal/rule"
	"renvo-cli/internal/transform"
	"renvo-cli/pkg/types"

	"github.com/spf13/cobra"
)

// runRoot executes one rename batch: resolve the rule and the operands,
// compile, pick the mover, then hand everything to the batch runner.
func runRoot(cmd *cobra.Command, args []string) error {
	fragments := ruleArgs.frags
	files := args
	if len(fragments) == 0 {
		if len(args) == 0 {
			return errors.New("no rule given: pass transform flags, -e expressions, or a rule argument")
		}
		fragments = []string{args[0]}
		files = args[1:]
	}

	if len(files) == 0 {
		var err error
		files, err = readOperands(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading file operands from stdin: %w", err)
		}
	}
	if len(files) == 0 {
		return errors.New("no files to rename: pass file operands or pipe names on stdin")
	}

	prog, err := rule.Compile(fragments)
	if err != nil {
		rendered, _ := issue.Get(issue.RuleCompileErrorId).Render(issueStyle())
		fmt.Fprint(os.Stderr, rendered)
		return fatalExit(err)
	}

	command, shell, cleanMode, makeDirsOn := resolveRunSettings(cmd, config.Get())
	if valid, fieldErrs := command.IsValid(); !valid {
		return errors.Join(fieldErrs...)
	}
	if valid, fieldErrs := shell.IsValid(); !valid {
		return errors.Join(fieldErrs...)
	}
	if valid, fieldErrs := cleanMode.IsValid(); !valid {
		return errors.Join(fieldErrs...)
	}

	mv, err := mover.Select(string(command), mover.Shell(shell))
	if err != nil {
		return err
	}
	if verbose {
		moveDesc := "built-in rename"
		if !command.IsBuiltin() {
			moveDesc = fmt.Sprintf("%q via %s shell", string(command), shell)
		}
		fmt.Fprintln(os.Stderr,
			VerboseStyle.Render(fmt.Sprintf("Move: %s, clean mode: %s, make dirs: %t", moveDesc, cleanMode, makeDirsOn)))
	}

	runner := batch.NewRunner(prog, transform.NewContext(transform.CleanMode(cleanMode)), mv, batch.Options{
		DryRun:   dryRun,
		Force:    force,
		MakeDirs: makeDirsOn,
		Quiet:    quiet,
		Verbose:  verbose,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	})

	stats, err := runner.Run(cmd.Context(), files)
	if err != nil {
		if errors.Is(err, rule.ErrRuntime) {
			rendered, _ := issue.Get(issue.RuleRuntimeErrorId).Render(issueStyle())
			fmt.Fprint(os.Stderr, rendered)
		}
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return fatalExit(err)
	}

	code := stats.ExitCode()
	if code == types.ExitOK {
		return nil
	}

	// Point at the matching remedy once per run, not once per file.
	if !quiet {
		if stats.Collisions > 0 {
			rendered, _ := issue.Get(issue.CollisionId).Render(issueStyle())
			fmt.Fprint(os.Stderr, rendered)
		}
		if stats.MoveFailures > 0 {
			rendered, _ := issue.Get(issue.MoveCommandFailedId).Render(issueStyle())
			fmt.Fprint(os.Stderr, rendered)
		}
	}
	return &ExitError{Code: code, Err: fmt.Errorf("failed to rename %d of %d files", stats.Failed, stats.Total)}
}

// resolveRunSettings merges run flags over the loaded config. A flag the
// user set wins; otherwise the config value applies.
func resolveRunSettings(cmd *cobra.Command, cfg *config.Config) (config.MoveCommand, config.ShellMode, config.CleanMode, bool) {
	flags := cmd.Flags()

	command := cfg.Command
	if flags.Changed("command") {
		command = config.MoveCommand(moveCommand)
	}
	shell := cfg.Shell
	if flags.Changed("shell") {
		shell = config.ShellMode(shellFlag)
	}
	cleanMode := cfg.CleanMode
	if flags.Changed("clean-mode") {
		cleanMode = config.CleanMode(cleanModeFlag)
	}
	makeDirsOn := cfg.MakeDirs
	if flags.Changed("make-dirs") {
		makeDirsOn = makeDirs
	}
	return command, shell, cleanMode, makeDirsOn
}

// readOperands reads one file name per line. Blank lines are skipped and a
// trailing carriage return is stripped so CRLF input behaves.
func readOperands(r io.Reader) ([]string, error) {
	var files []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return files, nil
}
