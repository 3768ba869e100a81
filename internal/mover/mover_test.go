// SPDX-License-Identifier: MPL-2.0

package mover

import (
	"errors"
	"strings"
	"testing"

	"renvo-cli/pkg/types"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		shell   Shell
		want    string // mover name
		wantErr bool
	}{
		{"empty command uses builtin rename", "", ShellNative, "rename", false},
		{"whitespace command uses builtin rename", "   ", ShellEmbedded, "rename", false},
		{"native shell", "mv -v", ShellNative, "native", false},
		{"embedded shell", "mv -v", ShellEmbedded, "embedded", false},
		{"unknown shell", "mv", Shell("powershell"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := Select(tt.command, tt.shell)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Select() should return error for unknown shell")
				}
				if !strings.Contains(err.Error(), "unknown shell") {
					t.Errorf("error should name the unknown shell, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select() returned error: %v", err)
			}
			if m.Name() != tt.want {
				t.Errorf("Select() mover name = %q, want %q", m.Name(), tt.want)
			}
		})
	}
}

func TestGetCommandMover(t *testing.T) {
	t.Parallel()

	if cm := GetCommandMover(NewRenameMover()); cm != nil {
		t.Errorf("GetCommandMover(rename) = %v, want nil", cm)
	}
	if cm := GetCommandMover(NewNativeCommandMover("mv")); cm == nil {
		t.Error("GetCommandMover(native) = nil, want command mover")
	}
	if cm := GetCommandMover(NewEmbeddedCommandMover("mv")); cm == nil {
		t.Error("GetCommandMover(embedded) = nil, want command mover")
	}
}

func TestCommandLine_Quoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		oldPath string
		newPath string
		want    string
	}{
		{
			name:    "safe names stay bare",
			oldPath: "a.txt",
			newPath: "b.txt",
			want:    "git mv a.txt b.txt",
		},
		{
			name:    "space forces quoting",
			oldPath: "My File.txt",
			newPath: "my_file.txt",
			want:    "git mv 'My File.txt' my_file.txt",
		},
		{
			name:    "single quote survives",
			oldPath: "don't.txt",
			newPath: "dont.txt",
			want:    `git mv 'don'\''t.txt' dont.txt`,
		},
		{
			name:    "glob characters are neutralized",
			oldPath: "*.txt",
			newPath: "star.txt",
			want:    "git mv '*.txt' star.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := commandLine("git mv", tt.oldPath, tt.newPath)
			if got != tt.want {
				t.Errorf("commandLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandLine_SameLineOnBothCommandMovers(t *testing.T) {
	t.Parallel()

	native := NewNativeCommandMover("mv -v")
	embedded := NewEmbeddedCommandMover("mv -v")

	old, dst := "a b.txt", "a_b.txt"
	if native.CommandLine(old, dst) != embedded.CommandLine(old, dst) {
		t.Errorf("native and embedded movers must build the same line, got %q and %q",
			native.CommandLine(old, dst), embedded.CommandLine(old, dst))
	}
}

func TestResult_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *Result
		want   bool
	}{
		{"zero exit no error", NewSuccessResult(), true},
		{"nonzero exit", NewExitCodeResult(3), false},
		{"error result", NewErrorResult(1, errors.New("boom")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.Success(); got != tt.want {
				t.Errorf("Success() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultConstructors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	r := NewErrorResult(types.ExitCode(1), boom)
	if r.ExitCode != 1 || !errors.Is(r.Error, boom) {
		t.Errorf("NewErrorResult() = %+v, want exit 1 wrapping boom", r)
	}

	r = NewExitCodeResult(types.ExitCode(7))
	if r.ExitCode != 7 || r.Error != nil {
		t.Errorf("NewExitCodeResult() = %+v, want exit 7 with no error", r)
	}

	r = NewSuccessResult()
	if r.ExitCode != 0 || r.Error != nil {
		t.Errorf("NewSuccessResult() = %+v, want zero value", r)
	}
}
