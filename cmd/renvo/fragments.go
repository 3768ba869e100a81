// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

type (
	// ruleFragments collects rule statements in the exact order their flags
	// appear on the command line. pflag calls Set left to right during
	// parsing, so the slice order is the pipeline order no matter how
	// transform flags and -e expressions are interleaved.
	ruleFragments struct {
		frags []string
	}

	// exprValue appends a raw rule expression as one fragment.
	exprValue struct{ rf *ruleFragments }

	// toggleValue appends a fixed statement when its flag is given.
	toggleValue struct {
		rf   *ruleFragments
		stmt string
	}

	// renumberValue appends renumber(WIDTH) after validating the width.
	renumberValue struct{ rf *ruleFragments }

	// prefixValue appends prefix("TEXT") with rule string quoting applied.
	prefixValue struct{ rf *ruleFragments }
)

// registerRuleFlags wires the transform shorthand flags and -e onto flags.
// Each flag shares the same ruleFragments sink.
func registerRuleFlags(flags *pflag.FlagSet, rf *ruleFragments) {
	flags.VarP(&exprValue{rf: rf}, "expr", "e", "rule expression to apply (repeatable)")

	for _, toggle := range []struct {
		name, shorthand, stmt, usage string
	}{
		{"lower", "l", "lower", "lowercase the name"},
		{"clean", "c", "clean", "scrub unsafe characters from the name"},
		{"url-encode", "", "url_encode", "percent-encode unsafe characters in the name"},
		{"unique", "u", "unique", "append #N until the name is unused"},
	} {
		f := flags.VarPF(&toggleValue{rf: rf, stmt: toggle.stmt}, toggle.name, toggle.shorthand, toggle.usage)
		f.NoOptDefVal = "true"
	}

	flags.VarP(&renumberValue{rf: rf}, "renumber", "N", "replace each digit run with a zero-padded ordinal of the given width")
	flags.VarP(&prefixValue{rf: rf}, "prefix", "P", "prepend the given text to the name")
}

// String implements pflag.Value.
func (v *exprValue) String() string { return "" }

// Set implements pflag.Value.
func (v *exprValue) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("rule expression must not be empty")
	}
	v.rf.frags = append(v.rf.frags, s)
	return nil
}

// Type implements pflag.Value.
func (v *exprValue) Type() string { return "rule" }

// String implements pflag.Value.
func (v *toggleValue) String() string { return "" }

// Set implements pflag.Value.
func (v *toggleValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		v.rf.frags = append(v.rf.frags, v.stmt)
	}
	return nil
}

// Type implements pflag.Value.
func (v *toggleValue) Type() string { return "bool" }

// String implements pflag.Value.
func (v *renumberValue) String() string { return "" }

// Set implements pflag.Value.
func (v *renumberValue) Set(s string) error {
	width, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("width must be an integer, got %q", s)
	}
	if width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", width)
	}
	v.rf.frags = append(v.rf.frags, fmt.Sprintf("renumber(%d)", width))
	return nil
}

// Type implements pflag.Value.
func (v *renumberValue) Type() string { return "width" }

// String implements pflag.Value.
func (v *prefixValue) String() string { return "" }

// Set implements pflag.Value.
func (v *prefixValue) Set(s string) error {
	v.rf.frags = append(v.rf.frags, "prefix("+quoteRuleString(s)+")")
	return nil
}

// Type implements pflag.Value.
func (v *prefixValue) Type() string { return "text" }

// quoteRuleString wraps s in double quotes, escaping backslashes and quotes
// the way the rule parser unescapes them.
func quoteRuleString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
