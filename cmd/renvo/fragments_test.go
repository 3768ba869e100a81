// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"reflect"
	"testing"

	"renvo-cli/internal/rule"
	"renvo-cli/internal/transform"

	"github.com/spf13/pflag"
)

// parseRuleFlags runs a fresh flag set over argv and returns the collected
// fragments.
func parseRuleFlags(t *testing.T, argv []string) []string {
	t.Helper()

	rf := &ruleFragments{}
	fs := pflag.NewFlagSet("renvo", pflag.ContinueOnError)
	registerRuleFlags(fs, rf)
	if err := fs.Parse(argv); err != nil {
		t.Fatalf("Parse(%q) = %v", argv, err)
	}
	return rf.frags
}

func TestRuleFlagsPreserveCommandLineOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{
			name: "single toggle",
			argv: []string{"--lower"},
			want: []string{"lower"},
		},
		{
			name: "toggles in given order",
			argv: []string{"--clean", "--lower"},
			want: []string{"clean", "lower"},
		},
		{
			name: "expression between toggles",
			argv: []string{"-l", "-e", "s/x/y/", "-u"},
			want: []string{"lower", "s/x/y/", "unique"},
		},
		{
			name: "combined shorthands keep letter order",
			argv: []string{"-cl"},
			want: []string{"clean", "lower"},
		},
		{
			name: "every flag kind interleaved",
			argv: []string{"-P", "day ", "-l", "--url-encode", "-N", "3", "-e", "stop"},
			want: []string{`prefix("day ")`, "lower", "url_encode", "renumber(3)", "stop"},
		},
		{
			name: "attached shorthand value",
			argv: []string{"-N3"},
			want: []string{"renumber(3)"},
		},
		{
			name: "repeated expressions",
			argv: []string{"-e", "lower", "-e", "clean"},
			want: []string{"lower", "clean"},
		},
		{
			name: "explicit false contributes nothing",
			argv: []string{"--lower=false", "--clean"},
			want: []string{"clean"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseRuleFlags(t, tt.argv)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("fragments = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuleFlagsRejectBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
	}{
		{name: "zero renumber width", argv: []string{"-N", "0"}},
		{name: "negative renumber width", argv: []string{"-N", "-2"}},
		{name: "non-integer renumber width", argv: []string{"-N", "wide"}},
		{name: "empty expression", argv: []string{"-e", ""}},
		{name: "blank expression", argv: []string{"-e", "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rf := &ruleFragments{}
			fs := pflag.NewFlagSet("renvo", pflag.ContinueOnError)
			fs.SetOutput(io.Discard)
			registerRuleFlags(fs, rf)
			if err := fs.Parse(tt.argv); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.argv)
			}
		})
	}
}

func TestQuoteRuleString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "day ", want: `"day "`},
		{name: "embedded quote", in: `say "hi"`, want: `"say \"hi\""`},
		{name: "backslash", in: `a\b`, want: `"a\\b"`},
		{name: "semicolon stays literal", in: "a;b", want: `"a;b"`},
		{name: "empty", in: "", want: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := quoteRuleString(tt.in); got != tt.want {
				t.Errorf("quoteRuleString(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

// The prefix flag quoting must round-trip through the rule parser: what the
// flag builds has to compile back to the exact user text.
func TestPrefixFlagRoundTripsThroughCompile(t *testing.T) {
	t.Parallel()

	text := `a "quoted" \piece; end`
	frags := parseRuleFlags(t, []string{"-P", text})
	if len(frags) != 1 {
		t.Fatalf("fragments = %q, want exactly one", frags)
	}

	prog, err := rule.Compile(frags)
	if err != nil {
		t.Fatalf("Compile(%q) = %v", frags, err)
	}
	res, err := prog.Apply(transform.NewContext(transform.CleanStrip), "x.txt")
	if err != nil {
		t.Fatalf("Apply() = %v", err)
	}
	if want := text + "x.txt"; res.Name != want {
		t.Errorf("Apply() = %q, want %q", res.Name, want)
	}
}
