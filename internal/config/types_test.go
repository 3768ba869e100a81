// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestShellMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode    ShellMode
		want    bool
		wantErr bool
	}{
		{ShellNative, true, false},
		{ShellEmbedded, true, false},
		{"", false, true},
		{"invalid", false, true},
		{"NATIVE", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.mode.IsValid()
			if isValid != tt.want {
				t.Errorf("ShellMode(%q).IsValid() = %v, want %v", tt.mode, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ShellMode(%q).IsValid() returned no errors, want error", tt.mode)
				}
				if !errors.Is(errs[0], ErrInvalidShellMode) {
					t.Errorf("error should wrap ErrInvalidShellMode, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ShellMode(%q).IsValid() returned unexpected errors: %v", tt.mode, errs)
			}
		})
	}
}

func TestCleanMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode    CleanMode
		want    bool
		wantErr bool
	}{
		{CleanStrip, true, false},
		{CleanCollapse, true, false},
		{"", false, true},
		{"invalid", false, true},
		{"STRIP", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.mode.IsValid()
			if isValid != tt.want {
				t.Errorf("CleanMode(%q).IsValid() = %v, want %v", tt.mode, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("CleanMode(%q).IsValid() returned no errors, want error", tt.mode)
				}
				if !errors.Is(errs[0], ErrInvalidCleanMode) {
					t.Errorf("error should wrap ErrInvalidCleanMode, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("CleanMode(%q).IsValid() returned unexpected errors: %v", tt.mode, errs)
			}
		})
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		want    bool
		wantErr bool
	}{
		{ColorSchemeAuto, true, false},
		{ColorSchemeDark, true, false},
		{ColorSchemeLight, true, false},
		{"", false, true},
		{"garbage", false, true},
		{"AUTO", false, true},
		{"Dark", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.scheme.IsValid()
			if isValid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ColorScheme(%q).IsValid() returned no errors, want error", tt.scheme)
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ColorScheme(%q).IsValid() returned unexpected errors: %v", tt.scheme, errs)
			}
		})
	}
}

func TestMoveCommand_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     MoveCommand
		want    bool
		wantErr bool
	}{
		{"empty is builtin", "", true, false},
		{"simple command", "mv", true, false},
		{"command with args", "git mv -k", true, false},
		{"spaces only", "   ", false, true},
		{"tab only", "\t", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.cmd.IsValid()
			if isValid != tt.want {
				t.Errorf("MoveCommand(%q).IsValid() = %v, want %v", tt.cmd, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("MoveCommand(%q).IsValid() returned no errors, want error", tt.cmd)
				}
				if !errors.Is(errs[0], ErrInvalidMoveCommand) {
					t.Errorf("error should wrap ErrInvalidMoveCommand, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("MoveCommand(%q).IsValid() returned unexpected errors: %v", tt.cmd, errs)
			}
		})
	}
}

func TestMoveCommand_IsBuiltin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  MoveCommand
		want bool
	}{
		{"", true},
		{"   ", true},
		{"mv", false},
		{"git mv", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.cmd), func(t *testing.T) {
			t.Parallel()
			if got := tt.cmd.IsBuiltin(); got != tt.want {
				t.Errorf("MoveCommand(%q).IsBuiltin() = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestUIConfig_IsValid(t *testing.T) {
	t.Parallel()

	valid := UIConfig{ColorScheme: ColorSchemeDark, Verbose: true}
	if isValid, errs := valid.IsValid(); !isValid || len(errs) > 0 {
		t.Errorf("UIConfig.IsValid() = %v, %v, want true with no errors", isValid, errs)
	}

	invalid := UIConfig{ColorScheme: "neon"}
	isValid, errs := invalid.IsValid()
	if isValid {
		t.Error("UIConfig with bad color scheme should be invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !errors.Is(errs[0], ErrInvalidUIConfig) {
		t.Errorf("error should wrap ErrInvalidUIConfig, got: %v", errs[0])
	}

	var uiErr *InvalidUIConfigError
	if !errors.As(errs[0], &uiErr) {
		t.Fatalf("expected *InvalidUIConfigError, got %T", errs[0])
	}
	if len(uiErr.FieldErrors) != 1 || !errors.Is(uiErr.FieldErrors[0], ErrInvalidColorScheme) {
		t.Errorf("field errors should carry the color scheme error, got: %v", uiErr.FieldErrors)
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if isValid, errs := DefaultConfig().IsValid(); !isValid || len(errs) > 0 {
		t.Errorf("DefaultConfig().IsValid() = %v, %v, want true with no errors", isValid, errs)
	}

	cfg := Config{
		Command:   "git mv",
		Shell:     ShellEmbedded,
		CleanMode: CleanCollapse,
		MakeDirs:  false,
		UI:        UIConfig{ColorScheme: ColorSchemeLight},
	}
	if isValid, errs := cfg.IsValid(); !isValid || len(errs) > 0 {
		t.Errorf("Config.IsValid() = %v, %v, want true with no errors", isValid, errs)
	}
}

func TestConfig_IsValid_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Command:   "  ",
		Shell:     "powershell",
		CleanMode: "shred",
		UI:        UIConfig{ColorScheme: "neon"},
	}

	isValid, errs := cfg.IsValid()
	if isValid {
		t.Fatal("Config with invalid fields should be invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected a single wrapping error, got %d: %v", len(errs), errs)
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got: %v", errs[0])
	}

	for _, sentinel := range []error{
		ErrInvalidMoveCommand,
		ErrInvalidShellMode,
		ErrInvalidCleanMode,
		ErrInvalidUIConfig,
	} {
		found := false
		for _, fieldErr := range cfgErr.FieldErrors {
			if errors.Is(fieldErr, sentinel) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("field errors should include %v, got: %v", sentinel, cfgErr.FieldErrors)
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if !cfg.Command.IsBuiltin() {
		t.Errorf("default command should be the built-in rename, got %q", cfg.Command)
	}
	if cfg.Shell != ShellNative {
		t.Errorf("default shell = %q, want %q", cfg.Shell, ShellNative)
	}
	if cfg.CleanMode != CleanStrip {
		t.Errorf("default clean mode = %q, want %q", cfg.CleanMode, CleanStrip)
	}
	if cfg.MakeDirs {
		t.Error("default make_dirs should be false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("default color scheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.UI.Verbose {
		t.Error("default verbose should be false")
	}
}
