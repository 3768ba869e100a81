// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

// Sandbox type constants.
const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox environment.
	SandboxSnap SandboxType = "snap"
)

// detectOnce caches the sandbox detection result for the lifetime of the
// process. The sandbox type cannot change while the process runs, so a
// process-wide cache is safe.
//
// INVARIANT: detectSandboxFrom must not panic. sync.OnceValue re-panics on
// every subsequent call, which would turn one bad lookup into a persistent
// crash.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// DetectSandbox returns the type of application sandbox the current process
// is running in. The result is cached after the first call.
//
// Detection methods:
//   - Flatpak: checks for existence of /.flatpak-info
//   - Snap: checks for the SNAP_NAME environment variable
func DetectSandbox() SandboxType {
	return detectOnce()
}

// SpawnCommandFor returns the command used to spawn processes on the host
// system for a given sandbox type, or an empty string when not sandboxed.
// A sandboxed renvo must run the configured move command on the host,
// where the files actually live.
//
// Pure function, independent of the cached detection state.
func SpawnCommandFor(st SandboxType) string {
	switch st {
	case SandboxNone:
		return ""
	case SandboxFlatpak:
		return "flatpak-spawn"
	case SandboxSnap:
		return "snap"
	default:
		return ""
	}
}

// SpawnArgsFor returns the arguments to prepend before the actual command
// when spawning on the host. Returns nil when not sandboxed.
//
// Pure function, independent of the cached detection state.
func SpawnArgsFor(st SandboxType) []string {
	switch st {
	case SandboxNone:
		return nil
	case SandboxFlatpak:
		return []string{"--host"}
	case SandboxSnap:
		return []string{"run", "--shell"}
	default:
		return nil
	}
}

// detectSandboxFrom performs sandbox detection using the provided lookup
// functions, so tests can inject custom behavior without mutating
// process-wide state.
func detectSandboxFrom(lookupEnv func(string) string, statFile func(string) error) SandboxType {
	// Flatpak takes precedence. The /.flatpak-info file is always present
	// inside Flatpak sandboxes.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}

	// The SNAP_NAME environment variable is set for all snaps.
	if lookupEnv("SNAP_NAME") != "" {
		return SandboxSnap
	}

	return SandboxNone
}

// statFile is the production adapter for the statFile parameter of
// detectSandboxFrom, wrapping os.Stat to match the func(string) error shape.
func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
