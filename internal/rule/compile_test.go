// SPDX-License-Identifier: MPL-2.0

package rule

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragments []string
		detail    string
	}{
		{
			name:      "no fragments",
			fragments: nil,
			detail:    "empty rule",
		},
		{
			name:      "blank fragment",
			fragments: []string{"   "},
			detail:    "empty rule",
		},
		{
			name:      "only separators",
			fragments: []string{";;"},
			detail:    "empty rule",
		},
		{
			name:      "unterminated pattern",
			fragments: []string{"s/foo"},
			detail:    "unterminated substitution pattern",
		},
		{
			name:      "unterminated replacement",
			fragments: []string{"s/foo/bar"},
			detail:    "unterminated substitution replacement",
		},
		{
			name:      "unknown substitution flag",
			fragments: []string{"s/a/b/x"},
			detail:    `unknown substitution flag "x"`,
		},
		{
			name:      "bad pattern",
			fragments: []string{"s/[unclosed/x/"},
			detail:    "bad pattern",
		},
		{
			name:      "bad stop guard",
			fragments: []string{"stop /(/"},
			detail:    "bad stop guard pattern",
		},
		{
			name:      "unterminated stop guard",
			fragments: []string{"stop /draft"},
			detail:    "unterminated stop guard pattern",
		},
		{
			name:      "unknown transform",
			fragments: []string{"shrink"},
			detail:    `unknown transform "shrink"`,
		},
		{
			name:      "renumber without width",
			fragments: []string{"renumber"},
			detail:    "renumber requires one integer digit-width argument",
		},
		{
			name:      "renumber empty parens",
			fragments: []string{"renumber()"},
			detail:    "renumber requires one integer digit-width argument",
		},
		{
			name:      "renumber string width",
			fragments: []string{`renumber("3")`},
			detail:    "renumber requires one integer digit-width argument",
		},
		{
			name:      "renumber zero width",
			fragments: []string{"renumber(0)"},
			detail:    "renumber width must be at least 1",
		},
		{
			name:      "renumber negative width",
			fragments: []string{"renumber(-2)"},
			detail:    "renumber width must be at least 1",
		},
		{
			name:      "prefix without argument",
			fragments: []string{"prefix"},
			detail:    "prefix requires one quoted string argument",
		},
		{
			name:      "prefix integer argument",
			fragments: []string{"prefix(3)"},
			detail:    "prefix requires one quoted string argument",
		},
		{
			name:      "lower with argument",
			fragments: []string{`lower("x")`},
			detail:    "lower takes no arguments",
		},
		{
			name:      "unterminated string argument",
			fragments: []string{`prefix("old`},
			detail:    "unterminated string argument",
		},
		{
			name:      "unterminated argument list",
			fragments: []string{`prefix("old"`},
			detail:    "unterminated argument list",
		},
		{
			name:      "garbage statement",
			fragments: []string{"42"},
			detail:    "expected a substitution, transform call, or stop",
		},
		{
			name:      "trailing garbage after statement",
			fragments: []string{"lower extra"},
			detail:    "unexpected",
		},
		{
			name:      "error in later fragment",
			fragments: []string{"lower", "s/foo"},
			detail:    "unterminated substitution pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(tt.fragments)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.fragments)
			}
			if !errors.Is(err, ErrCompile) {
				t.Errorf("Compile(%q) error = %v, want ErrCompile", tt.fragments, err)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("Compile(%q) error = %T, want *CompileError", tt.fragments, err)
			}
			if !strings.Contains(ce.Detail, tt.detail) {
				t.Errorf("Compile(%q) detail = %q, want it to contain %q", tt.fragments, ce.Detail, tt.detail)
			}
		})
	}
}

func TestCompileUnknownTransformListsKnownNames(t *testing.T) {
	t.Parallel()

	_, err := Compile([]string{"shrink"})
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Compile error = %v, want *CompileError", err)
	}
	for _, want := range []string{"by_date", "clean", "lower", "prefix", "renumber", "unique", "url_encode"} {
		if !strings.Contains(ce.Detail, want) {
			t.Errorf("detail %q does not mention %q", ce.Detail, want)
		}
	}
}

func TestCompileJoinsFragmentsInOrder(t *testing.T) {
	t.Parallel()

	prog, err := Compile([]string{"lower", "s/ /_/g", "unique"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got, want := prog.Source(), "lower; s/ /_/g; unique"; got != want {
		t.Errorf("Source() = %q, want %q", got, want)
	}
	if got := prog.Steps(); got != 3 {
		t.Errorf("Steps() = %d, want 3", got)
	}
}

func TestCompileStatementForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		steps  int
	}{
		{name: "semicolon separated", source: "lower; clean; unique", steps: 3},
		{name: "newline separated", source: "lower\nclean\nunique", steps: 3},
		{name: "alternate delimiter pipe", source: "s|a/b|c|g", steps: 1},
		{name: "alternate delimiter comma", source: "s,a,b,", steps: 1},
		{name: "escaped delimiter in pattern", source: `s/a\/b/c/`, steps: 1},
		{name: "lowercase alias", source: "lowercase", steps: 1},
		{name: "stop without guard", source: "stop", steps: 1},
		{name: "stop with guard", source: "stop /^keep_/", steps: 1},
		{name: "call with empty parens", source: "unique()", steps: 1},
		{name: "arguments with spaces", source: `prefix( "old_" )`, steps: 1},
		{name: "trailing separators", source: "lower;;\n", steps: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, err := Compile([]string{tt.source})
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.source, err)
			}
			if got := prog.Steps(); got != tt.steps {
				t.Errorf("Compile(%q).Steps() = %d, want %d", tt.source, got, tt.steps)
			}
		})
	}
}

func TestCompileErrorReportsStatementText(t *testing.T) {
	t.Parallel()

	_, err := Compile([]string{"lower", "renumber(0)"})
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Compile error = %v, want *CompileError", err)
	}
	if got, want := ce.Stmt, "renumber(0)"; got != want {
		t.Errorf("Stmt = %q, want %q", got, want)
	}
	if ce.Offset != len("lower; ") {
		t.Errorf("Offset = %d, want %d", ce.Offset, len("lower; "))
	}
}
