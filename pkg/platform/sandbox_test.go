// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"os"
	"testing"
)

// noEnv and noFile simulate a plain host: no env vars set, no files present.
func noEnv(string) string { return "" }

func noFile(string) error { return os.ErrNotExist }

func TestDetectSandboxFrom_NoSandbox(t *testing.T) {
	t.Parallel()

	if got := detectSandboxFrom(noEnv, noFile); got != SandboxNone {
		t.Errorf("detectSandboxFrom() = %q, want %q", got, SandboxNone)
	}
}

func TestDetectSandboxFrom_Flatpak(t *testing.T) {
	t.Parallel()

	statFlatpakInfo := func(path string) error {
		if path == "/.flatpak-info" {
			return nil
		}
		return os.ErrNotExist
	}

	if got := detectSandboxFrom(noEnv, statFlatpakInfo); got != SandboxFlatpak {
		t.Errorf("detectSandboxFrom() = %q, want %q", got, SandboxFlatpak)
	}
}

func TestDetectSandboxFrom_Snap(t *testing.T) {
	t.Parallel()

	snapEnv := func(key string) string {
		if key == "SNAP_NAME" {
			return "renvo"
		}
		return ""
	}

	if got := detectSandboxFrom(snapEnv, noFile); got != SandboxSnap {
		t.Errorf("detectSandboxFrom() = %q, want %q", got, SandboxSnap)
	}
}

func TestDetectSandboxFrom_FlatpakTakesPrecedence(t *testing.T) {
	t.Parallel()

	snapEnv := func(key string) string {
		if key == "SNAP_NAME" {
			return "renvo"
		}
		return ""
	}
	statAlways := func(string) error { return nil }

	if got := detectSandboxFrom(snapEnv, statAlways); got != SandboxFlatpak {
		t.Errorf("detectSandboxFrom() = %q, want %q (Flatpak takes precedence)", got, SandboxFlatpak)
	}
}

func TestDetectSandboxFrom_StatErrorMeansNoFlatpak(t *testing.T) {
	t.Parallel()

	statDenied := func(string) error { return errors.New("permission denied") }

	if got := detectSandboxFrom(noEnv, statDenied); got != SandboxNone {
		t.Errorf("detectSandboxFrom() = %q, want %q (stat failure is not a sandbox)", got, SandboxNone)
	}
}

func TestSpawnCommandFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sandbox  SandboxType
		expected string
	}{
		{"no sandbox", SandboxNone, ""},
		{"flatpak", SandboxFlatpak, "flatpak-spawn"},
		{"snap", SandboxSnap, "snap"},
		{"unknown", SandboxType("bottle"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SpawnCommandFor(tt.sandbox); got != tt.expected {
				t.Errorf("SpawnCommandFor(%q) = %q, want %q", tt.sandbox, got, tt.expected)
			}
		})
	}
}

func TestSpawnArgsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sandbox  SandboxType
		expected []string
	}{
		{"no sandbox", SandboxNone, nil},
		{"flatpak", SandboxFlatpak, []string{"--host"}},
		{"snap", SandboxSnap, []string{"run", "--shell"}},
		{"unknown", SandboxType("bottle"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SpawnArgsFor(tt.sandbox)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("SpawnArgsFor(%q) = %v, want nil", tt.sandbox, got)
				}
				return
			}

			if len(got) != len(tt.expected) {
				t.Fatalf("SpawnArgsFor(%q) = %v, want %v", tt.sandbox, got, tt.expected)
			}
			for i, v := range got {
				if v != tt.expected[i] {
					t.Errorf("SpawnArgsFor(%q)[%d] = %q, want %q", tt.sandbox, i, v, tt.expected[i])
				}
			}
		})
	}
}

func TestDetectSandbox_CachesResult(t *testing.T) {
	// Not parallel: reads and primes the process-wide cache.
	first := DetectSandbox()
	second := DetectSandbox()

	if first != second {
		t.Errorf("DetectSandbox should return cached result: first=%q, second=%q", first, second)
	}
}

func TestSandboxTypeConstants(t *testing.T) {
	t.Parallel()

	types := []SandboxType{SandboxNone, SandboxFlatpak, SandboxSnap}
	seen := make(map[SandboxType]bool)

	for _, st := range types {
		if seen[st] {
			t.Errorf("duplicate SandboxType constant: %q", st)
		}
		seen[st] = true
	}

	// SandboxNone is the zero value so an unset SandboxType means no sandbox.
	if SandboxNone != "" {
		t.Errorf("SandboxNone should be empty string, got %q", SandboxNone)
	}
}
