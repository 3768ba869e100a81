// SPDX-License-Identifier: MPL-2.0

package transform

// CleanMode selects how Clean handles characters outside the safe set.
// The cmd layer validates the configured value before it is cast into this
// type; Clean itself treats any value other than CleanCollapse as strip.
type CleanMode string

const (
	// CleanStrip deletes unsafe characters outright. This is the default.
	CleanStrip CleanMode = "strip"
	// CleanCollapse replaces each run of unsafe characters with a single
	// underscore, then drops underscores left dangling at token edges.
	CleanCollapse CleanMode = "collapse"
)
