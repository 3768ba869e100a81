// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It centralizes runtime.GOOS comparisons, detects application sandboxes
// (Flatpak, Snap) so external move commands can be spawned on the host
// system, and knows the Windows reserved filenames that can never be used
// as rename destinations.
package platform
