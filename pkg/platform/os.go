// SPDX-License-Identifier: MPL-2.0

package platform

// Named runtime.GOOS values for the platforms renvo branches on: the config
// directory location differs per OS, and destination names get the reserved
// name check only on Windows.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
