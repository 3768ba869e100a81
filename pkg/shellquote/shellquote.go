// SPDX-License-Identifier: MPL-2.0

// Package shellquote quotes strings for safe use as single POSIX shell
// arguments. Quoted names appear in dry-run output and are interpolated
// into the configured rename command line, so the quoting must survive a
// real shell's word splitting, not just look plausible.
package shellquote

import "strings"

// Quote returns s in a form that a POSIX shell parses back as exactly one
// word equal to s. Strings consisting solely of safe characters are
// returned unchanged. Anything else is wrapped in single quotes, with each
// embedded single quote replaced by the close-escape-reopen sequence '\''.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if allSafe(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Join quotes each argument and joins them with single spaces, yielding a
// command line a POSIX shell splits back into exactly args.
func Join(args ...string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}

// allSafe reports whether every byte of s is in the safe set
// [A-Za-z0-9@%:,./=+_-]. Multi-byte runes always contain bytes outside the
// set, so non-ASCII strings are quoted.
func allSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		if !safeByte(s[i]) {
			return false
		}
	}
	return true
}

func safeByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '@', '%', ':', ',', '.', '/', '=', '+', '_', '-':
		return true
	}
	return false
}
