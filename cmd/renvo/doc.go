// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for renvo.
//
// This package implements the Cobra command hierarchy for the renvo CLI:
// the root rename command with its rule-building flags, plus the config,
// syntax, and completion subcommands.
package cmd
