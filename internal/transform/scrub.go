// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"fmt"
	"strings"
)

// Lower returns the lowercase form of name.
func Lower(name string) string {
	return strings.ToLower(name)
}

// Clean scrubs characters outside the safe set [A-Za-z0-9_./-] from name.
// In strip mode unsafe characters are deleted; in collapse mode each run of
// unsafe characters becomes a single underscore, and underscores that end up
// dangling at a token edge (string ends, or next to "." or "/") are dropped.
// A leading "-" is rewritten to "_" first so the result can never be misread
// as a command-line flag by downstream tools.
func Clean(tc *Context, name string) string {
	name = guardLeadingDash(name)
	if tc.CleanMode == CleanCollapse {
		return collapseUnsafe(name)
	}
	return stripUnsafe(name)
}

// URLEncode percent-encodes every byte of name outside the safe set
// [A-Za-z0-9_./-] as %XX with uppercase hex, applying the same leading-dash
// guard as Clean first. Multi-byte runes are encoded byte by byte.
func URLEncode(name string) string {
	name = guardLeadingDash(name)

	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if cleanSafe(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

// guardLeadingDash rewrites a leading "-" to "_". The dash itself is in the
// safe set, so the character-class passes would keep it; the guard is what
// stops a cleaned name from starting like a flag.
func guardLeadingDash(name string) string {
	if strings.HasPrefix(name, "-") {
		return "_" + name[1:]
	}
	return name
}

func stripUnsafe(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if cleanSafe(name[i]) {
			b.WriteByte(name[i])
		}
	}
	return b.String()
}

func collapseUnsafe(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inserted := make([]bool, 0, len(name))

	i := 0
	for i < len(name) {
		if cleanSafe(name[i]) {
			b.WriteByte(name[i])
			inserted = append(inserted, false)
			i++
			continue
		}
		for i < len(name) && !cleanSafe(name[i]) {
			i++
		}
		b.WriteByte('_')
		inserted = append(inserted, true)
	}

	// Drop inserted separators that sit at a token edge; underscores the
	// input already had are kept as-is.
	out := b.String()
	var final strings.Builder
	final.Grow(len(out))
	for j := 0; j < len(out); j++ {
		if inserted[j] {
			atStart := j == 0 || out[j-1] == '.' || out[j-1] == '/'
			atEnd := j == len(out)-1 || out[j+1] == '.' || out[j+1] == '/'
			if atStart || atEnd {
				continue
			}
		}
		final.WriteByte(out[j])
	}
	return final.String()
}

// cleanSafe reports whether b is in the transform safe set [A-Za-z0-9_./-].
// This is the set Clean preserves and URLEncode leaves unencoded; it is
// narrower than the shell-quoting safe set.
func cleanSafe(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '_', '.', '/', '-':
		return true
	}
	return false
}
