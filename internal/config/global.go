// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

// Package-level cache so the configuration is resolved once per process.
// A rename run reads the config exactly once up front; the cache exists so
// the config subcommands and the run driver agree on what was loaded.
var (
	mu           sync.Mutex
	globalConfig *Config
	configPath   string
	errLastLoad  error

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride forces loading from a specific file, set from
	// the --config flag before any Load call.
	configFilePathOverride string
)

// Load loads the configuration, caching the result (including a failed
// load) until Reset or one of the Set*Override functions clears the cache.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil || errLastLoad != nil {
		return globalConfig, errLastLoad
	}

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		errLastLoad = err
		return nil, err
	}

	globalConfig = cfg
	configPath = path
	return cfg, nil
}

// Get returns the loaded configuration, falling back to defaults when
// loading fails. Callers that must distinguish a broken config file from
// a missing one should use Load instead.
func Get() *Config {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return DefaultConfig()
	}
	return cfg
}

// ConfigFilePath returns the path of the config file the last successful
// Load resolved, or "" when defaults are in effect.
func ConfigFilePath() string {
	mu.Lock()
	defer mu.Unlock()
	return configPath
}

// Reset clears the cache and all overrides. Call from test cleanup to
// restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	configPath = ""
	errLastLoad = nil
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path and clears the
// cache. This is primarily intended for testing to bypass os.UserHomeDir()
// which doesn't reliably respect the HOME env var on all platforms
// (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = dir
	globalConfig = nil
	configPath = ""
	errLastLoad = nil
}

// SetConfigFilePathOverride forces subsequent loads to read the given file
// and clears the cache. Set from the --config flag before the first Load.
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()
	configFilePathOverride = path
	globalConfig = nil
	configPath = ""
	errLastLoad = nil
}
