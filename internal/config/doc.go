// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/renvo/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/renvo/config.toml on macOS, %APPDATA%\renvo\config.toml
// on Windows), with .renvo.toml in the current directory as a per-tree fallback. The
// package provides type-safe configuration access covering the move command, shell mode,
// filename cleaning mode, directory creation, and UI settings.
//
// Loaded values are validated against the typed enums in this package so that a typo in
// the config file fails the run up front with a clear message instead of surfacing
// halfway through a batch.
package config
