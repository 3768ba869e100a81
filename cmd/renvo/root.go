// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"renvo-cli/internal/config"
	"renvo-cli/internal/issue"
	"renvo-cli/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// quiet suppresses all non-error output
	quiet bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// dryRun previews the batch without touching the filesystem
	dryRun bool
	// force overwrites existing destination files
	force bool
	// makeDirs creates missing destination directories
	makeDirs bool
	// moveCommand overrides the configured external move command
	moveCommand string
	// shellFlag overrides the configured shell for the move command
	shellFlag string
	// cleanModeFlag overrides the configured clean transform mode
	cleanModeFlag string

	// ruleArgs collects rule fragments from the transform flags and -e, in
	// command-line order.
	ruleArgs = &ruleFragments{}

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "renvo [flags] [RULE] FILE...",
		Short: "A rule-driven batch file renamer",
		Long: TitleStyle.Render("renvo") + SubtitleStyle.Render(" - A rule-driven batch file renamer") + `

renvo renames files by running a small rule over each name. A rule is a
semicolon-separated pipeline of sed-style substitutions and named
transforms; the rewritten name becomes the rename destination.

The rule comes from transform flags (-l, -c, -u, ...), from -e
expressions, or from the first positional argument. Flags contribute
statements in the order they appear on the command line. When no file
operands are given, names are read from standard input, one per line.

` + SubtitleStyle.Render("Examples:") + `
  renvo -l *.JPG                     Lowercase every name
  renvo 's/ /_/g' *.txt              Replace spaces with underscores
  renvo -n 's/\.jpeg$/.jpg/' *.jpeg  Preview without touching anything
  renvo -c -u *                      Scrub names, suffix #N on clashes
  renvo syntax                       Show the full rule reference`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoot(cmd, args)
			if err != nil {
				var exitErr *ExitError
				if errors.As(err, &exitErr) {
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
			}
			return err
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/renvo/config.toml)")

	// Rule flags, all feeding ruleArgs in command-line order
	registerRuleFlags(rootCmd.Flags(), ruleArgs)

	// Run behavior flags
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would be renamed without touching anything")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing destination files")
	rootCmd.Flags().BoolVarP(&makeDirs, "make-dirs", "D", false, "create missing destination directories")
	rootCmd.Flags().StringVar(&moveCommand, "command", "", "external move command (default is the built-in rename)")
	rootCmd.Flags().StringVar(&shellFlag, "shell", "", "shell for the move command: native or embedded")
	rootCmd.Flags().StringVar(&cleanModeFlag, "clean-mode", "", "clean transform mode: strip or collapse")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress all output except errors")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(syntaxCmd)
	rootCmd.AddCommand(completionCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		// Flag and usage errors never reach RunE, so anything that is not
		// an ExitError means the run never started.
		os.Exit(int(types.ExitFatal))
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		if expanded, err := homedir.Expand(cfgFile); err == nil {
			cfgFile = expanded
		}
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration; a broken config file must not hide behind defaults
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueStyle maps the configured color scheme to a glamour style name.
func issueStyle() string {
	switch config.Get().UI.ColorScheme {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}
