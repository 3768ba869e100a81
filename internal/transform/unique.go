// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"regexp"
	"strconv"
	"strings"
)

// serialPattern matches a "#" followed by digits. Unique increments the last
// such group, which is the one a previous Unique pass appended.
var serialPattern = regexp.MustCompile(`#(\d+)`)

// Unique probes the filesystem until name does not exist, rewriting on each
// collision: an existing "#N" group is incremented, otherwise "#1" is
// inserted before the last "." (or appended when there is no dot). The loop
// re-probes after every rewrite since the incremented candidate may collide
// too. There is no iteration cap; with a sane existence probe the serial
// eventually clears the collisions.
func Unique(tc *Context, name string) string {
	for tc.Exists(name) {
		name = nextCandidate(name)
	}
	return name
}

func nextCandidate(name string) string {
	if locs := serialPattern.FindAllStringSubmatchIndex(name, -1); locs != nil {
		loc := locs[len(locs)-1]
		n, err := strconv.Atoi(name[loc[2]:loc[3]])
		if err == nil {
			return name[:loc[2]] + strconv.Itoa(n+1) + name[loc[3]:]
		}
	}
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		return name[:dot] + "#1" + name[dot:]
	}
	return name + "#1"
}
