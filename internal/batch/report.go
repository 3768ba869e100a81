// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"renvo-cli/pkg/shellquote"
)

// reporter renders per-file outcome lines and the end-of-run summary to
// the output stream. Diagnostics do not pass through here; they go to
// the logger on the error stream. Names are displayed in shell-quoted
// form, so anything with spaces or metacharacters can be copied straight
// back into a shell.
type reporter struct {
	out     io.Writer
	quiet   bool
	verbose bool
	dryRun  bool

	arrow   lipgloss.Style
	renamed lipgloss.Style
	planned lipgloss.Style
	command lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
}

func newReporter(out io.Writer, opts Options) *reporter {
	return &reporter{
		out:     out,
		quiet:   opts.Quiet,
		verbose: opts.Verbose,
		dryRun:  opts.DryRun,
		arrow:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		renamed: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		planned: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		good:    lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
}

// fileRenamed prints one "old -> new" line for a completed rename.
// These lines are part of verbose reporting; the summary still prints
// without them.
func (rep *reporter) fileRenamed(oldName, newName string) {
	if rep.quiet || !rep.verbose {
		return
	}
	fmt.Fprintf(rep.out, "%s %s %s\n",
		shellquote.Quote(oldName),
		rep.arrow.Render("->"),
		rep.renamed.Render(shellquote.Quote(newName)))
}

// filePlanned prints the rename a dry run would perform, plus the exact
// shell line when an external move command is configured.
func (rep *reporter) filePlanned(oldName, newName, cmdLine string) {
	if rep.quiet {
		return
	}
	fmt.Fprintf(rep.out, "%s %s %s\n",
		shellquote.Quote(oldName),
		rep.arrow.Render("->"),
		rep.planned.Render(shellquote.Quote(newName)))
	if cmdLine != "" {
		fmt.Fprintf(rep.out, "  %s\n", rep.command.Render("$ "+cmdLine))
	}
}

// summary prints the aggregate counters for the run on a single line.
func (rep *reporter) summary(s *RunStats) {
	if rep.quiet {
		return
	}
	verb := "renamed"
	if rep.dryRun {
		verb = "would rename"
	}
	line := fmt.Sprintf("%d files: %s %d, skipped %d, failed %d",
		s.Total, verb, s.Renamed, s.Skipped, s.Failed)
	style := rep.good
	if s.Failed > 0 {
		style = rep.bad
	}
	fmt.Fprintln(rep.out, style.Render(line))
}
