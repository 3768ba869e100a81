// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ShellNative runs the move command through the host system shell.
	// Defined locally to avoid coupling config to internal/mover;
	// the driver casts at the boundary.
	ShellNative ShellMode = "native"
	// ShellEmbedded runs the move command through the embedded mvdan/sh interpreter.
	ShellEmbedded ShellMode = "embedded"

	// CleanStrip drops unsafe filename characters entirely.
	// Defined locally to avoid coupling config to internal/transform;
	// the driver casts at the boundary.
	CleanStrip CleanMode = "strip"
	// CleanCollapse folds runs of unsafe characters into single underscores.
	CleanCollapse CleanMode = "collapse"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidShellMode is returned when a ShellMode value is not recognized.
	ErrInvalidShellMode = errors.New("invalid shell mode")
	// ErrInvalidCleanMode is returned when a CleanMode value is not recognized.
	ErrInvalidCleanMode = errors.New("invalid clean mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidMoveCommand is returned when a MoveCommand value is whitespace-only.
	ErrInvalidMoveCommand = errors.New("invalid move command")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ShellMode specifies which shell executes the configured move command.
	ShellMode string

	// InvalidShellModeError is returned when a ShellMode value is not recognized.
	// It wraps ErrInvalidShellMode for errors.Is() compatibility.
	InvalidShellModeError struct {
		Value ShellMode
	}

	// CleanMode specifies how the clean transform treats unsafe characters.
	CleanMode string

	// InvalidCleanModeError is returned when a CleanMode value is not recognized.
	// It wraps ErrInvalidCleanMode for errors.Is() compatibility.
	InvalidCleanModeError struct {
		Value CleanMode
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// MoveCommand is the external command used to move files, e.g. "mv -v"
	// or "git mv". The zero value ("") is valid and selects the built-in
	// rename. Non-zero values must not be whitespace-only.
	MoveCommand string

	// InvalidMoveCommandError is returned when a MoveCommand value is
	// non-empty but whitespace-only.
	InvalidMoveCommandError struct {
		Value MoveCommand
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Command is the external move command; empty selects the built-in rename.
		Command MoveCommand `toml:"command" mapstructure:"command"`
		// Shell selects which shell runs the move command
		Shell ShellMode `toml:"shell" mapstructure:"shell"`
		// CleanMode selects how the clean transform treats unsafe characters
		CleanMode CleanMode `toml:"clean_mode" mapstructure:"clean_mode"`
		// MakeDirs creates missing destination directories before moving
		MakeDirs bool `toml:"make_dirs" mapstructure:"make_dirs"`
		// UI configures the user interface
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `toml:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the MoveCommand.
func (c MoveCommand) String() string { return string(c) }

// IsBuiltin reports whether the built-in rename should be used instead of
// spawning an external command.
func (c MoveCommand) IsBuiltin() bool {
	return strings.TrimSpace(string(c)) == ""
}

// IsValid returns whether the MoveCommand is valid.
// The zero value ("") is valid (means "use the built-in rename").
// Non-zero values must not be whitespace-only.
func (c MoveCommand) IsValid() (bool, []error) {
	if c == "" {
		return true, nil
	}
	if strings.TrimSpace(string(c)) == "" {
		return false, []error{&InvalidMoveCommandError{Value: c}}
	}
	return true, nil
}

// Error implements the error interface for InvalidMoveCommandError.
func (e *InvalidMoveCommandError) Error() string {
	return fmt.Sprintf("invalid move command %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidMoveCommand for errors.Is() compatibility.
func (e *InvalidMoveCommandError) Unwrap() error { return ErrInvalidMoveCommand }

// Error implements the error interface for InvalidShellModeError.
func (e *InvalidShellModeError) Error() string {
	return fmt.Sprintf("invalid shell mode %q (valid: native, embedded)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidShellModeError) Unwrap() error {
	return ErrInvalidShellMode
}

// String returns the string representation of the ShellMode.
func (m ShellMode) String() string { return string(m) }

// IsValid returns whether the ShellMode is one of the defined shell modes,
// and a list of validation errors if it is not.
func (m ShellMode) IsValid() (bool, []error) {
	switch m {
	case ShellNative, ShellEmbedded:
		return true, nil
	default:
		return false, []error{&InvalidShellModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidCleanModeError.
func (e *InvalidCleanModeError) Error() string {
	return fmt.Sprintf("invalid clean mode %q (valid: strip, collapse)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidCleanModeError) Unwrap() error {
	return ErrInvalidCleanMode
}

// String returns the string representation of the CleanMode.
func (m CleanMode) String() string { return string(m) }

// IsValid returns whether the CleanMode is one of the defined clean modes,
// and a list of validation errors if it is not.
func (m CleanMode) IsValid() (bool, []error) {
	switch m {
	case CleanStrip, CleanCollapse:
		return true, nil
	default:
		return false, []error{&InvalidCleanModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Command.IsValid(), Shell.IsValid(), CleanMode.IsValid(),
// and UI.IsValid(). MakeDirs is a bool and needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Command.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Shell.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.CleanMode.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Command:   "", // Built-in rename
		Shell:     ShellNative,
		CleanMode: CleanStrip,
		MakeDirs:  false,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
