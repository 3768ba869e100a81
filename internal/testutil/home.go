// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"renvo-cli/pkg/platform"
)

// SetHomeDir points the platform home variable at dir and returns a cleanup
// function that restores it. Config-dir resolution walks the home directory
// on every platform, so tests that touch configuration pin it to a temp dir
// to stay isolated from the developer's real config.
//
// Windows resolves the home from USERPROFILE, everything else from HOME.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	if runtime.GOOS == platform.Windows {
		return MustSetenv(t, "USERPROFILE", dir)
	}
	return MustSetenv(t, "HOME", dir)
}
