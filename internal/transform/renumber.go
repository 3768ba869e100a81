// SPDX-License-Identifier: MPL-2.0

package transform

import "fmt"

// Renumber replaces the working name with the zero-padded decimal rendering
// of the next value of the process-wide counter, using the given digit
// width. The first invocation in a run yields "1" padded to width; every
// invocation advances the counter no matter which file triggered it. The
// original name, extension included, is discarded: renumbering a batch of
// *.jpg files needs an explicit extension re-added by a later rule step.
func Renumber(tc *Context, width int) string {
	return fmt.Sprintf("%0*d", width, tc.NextSerial())
}
