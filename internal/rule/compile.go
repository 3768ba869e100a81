// SPDX-License-Identifier: MPL-2.0

package rule

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"renvo-cli/internal/transform"
)

// builder turns a parsed transform call into an executable step, checking
// arity and argument types along the way.
type builder func(s stmtNode) (stepFunc, error)

var builders = map[string]builder{
	"lower":      buildLower,
	"lowercase":  buildLower,
	"clean":      buildClean,
	"url_encode": buildURLEncode,
	"unique":     buildUnique,
	"renumber":   buildRenumber,
	"by_date":    buildByDate,
	"prefix":     buildPrefix,
}

// Compile joins the rule fragments in order, parses the combined source,
// and resolves every statement to an executable step. Fragments are joined
// with "; " so each CLI flag and -e expression stays a statement of its
// own. Any error is a *CompileError wrapping ErrCompile.
func Compile(fragments []string) (*Program, error) {
	source := strings.TrimSpace(strings.Join(fragments, "; "))
	if source == "" {
		return nil, &CompileError{Detail: "empty rule: provide at least one transform flag or -e expression"}
	}

	p := &parser{src: source}
	stmts, err := p.parse()
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, &CompileError{Detail: "empty rule: provide at least one transform flag or -e expression"}
	}

	prog := &Program{source: source, steps: make([]step, 0, len(stmts))}
	for _, s := range stmts {
		fn, err := buildStep(s)
		if err != nil {
			return nil, err
		}
		prog.steps = append(prog.steps, step{text: s.text, run: fn})
	}
	return prog, nil
}

func buildStep(s stmtNode) (stepFunc, error) {
	switch {
	case s.subst != nil:
		return buildSubst(s)
	case s.stop != nil:
		return buildStop(s)
	default:
		b, ok := builders[s.call.name]
		if !ok {
			known := maps.Keys(builders)
			slices.Sort(known)
			return nil, &CompileError{
				Stmt:   s.text,
				Offset: s.off,
				Detail: fmt.Sprintf("unknown transform %q (known: %s)", s.call.name, strings.Join(known, ", ")),
			}
		}
		return b(s)
	}
}

func buildSubst(s stmtNode) (stepFunc, error) {
	pat := s.subst.pat
	if s.subst.insensitive {
		pat = "(?i)" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, &CompileError{
			Stmt:   s.text,
			Offset: s.off,
			Detail: fmt.Sprintf("bad pattern: %v", err),
		}
	}

	repl := s.subst.repl
	if s.subst.global {
		return func(_ *transform.Context, name string) (string, bool, error) {
			return re.ReplaceAllString(name, repl), false, nil
		}, nil
	}
	return func(_ *transform.Context, name string) (string, bool, error) {
		return replaceFirst(re, name, repl), false, nil
	}, nil
}

// replaceFirst rewrites only the leftmost match, expanding $1-style
// references the same way ReplaceAllString does.
func replaceFirst(re *regexp.Regexp, name, repl string) string {
	m := re.FindStringSubmatchIndex(name)
	if m == nil {
		return name
	}
	out := make([]byte, 0, len(name))
	out = append(out, name[:m[0]]...)
	out = re.ExpandString(out, repl, name, m)
	out = append(out, name[m[1]:]...)
	return string(out)
}

func buildStop(s stmtNode) (stepFunc, error) {
	if s.stop.guard == "" {
		return func(_ *transform.Context, name string) (string, bool, error) {
			return name, true, nil
		}, nil
	}
	re, err := regexp.Compile(s.stop.guard)
	if err != nil {
		return nil, &CompileError{
			Stmt:   s.text,
			Offset: s.off,
			Detail: fmt.Sprintf("bad stop guard pattern: %v", err),
		}
	}
	return func(_ *transform.Context, name string) (string, bool, error) {
		return name, re.MatchString(name), nil
	}, nil
}

func buildLower(s stmtNode) (stepFunc, error) {
	if err := wantNoArgs(s); err != nil {
		return nil, err
	}
	return func(_ *transform.Context, name string) (string, bool, error) {
		return transform.Lower(name), false, nil
	}, nil
}

func buildClean(s stmtNode) (stepFunc, error) {
	if err := wantNoArgs(s); err != nil {
		return nil, err
	}
	return func(tc *transform.Context, name string) (string, bool, error) {
		return transform.Clean(tc, name), false, nil
	}, nil
}

func buildURLEncode(s stmtNode) (stepFunc, error) {
	if err := wantNoArgs(s); err != nil {
		return nil, err
	}
	return func(_ *transform.Context, name string) (string, bool, error) {
		return transform.URLEncode(name), false, nil
	}, nil
}

func buildUnique(s stmtNode) (stepFunc, error) {
	if err := wantNoArgs(s); err != nil {
		return nil, err
	}
	return func(tc *transform.Context, name string) (string, bool, error) {
		return transform.Unique(tc, name), false, nil
	}, nil
}

func buildRenumber(s stmtNode) (stepFunc, error) {
	args := s.call.args
	if len(args) != 1 || args[0].isStr {
		return nil, &CompileError{
			Stmt:   s.text,
			Offset: s.off,
			Detail: "renumber requires one integer digit-width argument, e.g. renumber(3)",
		}
	}
	width := args[0].num
	if width < 1 {
		return nil, &CompileError{
			Stmt:   s.text,
			Offset: s.off,
			Detail: fmt.Sprintf("renumber width must be at least 1, got %d", width),
		}
	}
	return func(tc *transform.Context, _ string) (string, bool, error) {
		return transform.Renumber(tc, width), false, nil
	}, nil
}

func buildByDate(s stmtNode) (stepFunc, error) {
	if err := wantNoArgs(s); err != nil {
		return nil, err
	}
	return func(tc *transform.Context, name string) (string, bool, error) {
		next, err := transform.ByDate(tc, name)
		if err != nil {
			return name, false, err
		}
		return next, false, nil
	}, nil
}

func buildPrefix(s stmtNode) (stepFunc, error) {
	args := s.call.args
	if len(args) != 1 || !args[0].isStr {
		return nil, &CompileError{
			Stmt:   s.text,
			Offset: s.off,
			Detail: `prefix requires one quoted string argument, e.g. prefix("old_")`,
		}
	}
	text := args[0].str
	return func(_ *transform.Context, name string) (string, bool, error) {
		return text + name, false, nil
	}, nil
}

func wantNoArgs(s stmtNode) error {
	if len(s.call.args) != 0 {
		return &CompileError{
			Stmt:   s.text,
			Offset: s.off,
			Detail: fmt.Sprintf("%s takes no arguments", s.call.name),
		}
	}
	return nil
}
