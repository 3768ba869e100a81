// SPDX-License-Identifier: MPL-2.0

package rule

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// stmtNode is one parsed statement. Exactly one of subst, call, stop
	// is set.
	stmtNode struct {
		off   int
		text  string
		subst *substNode
		call  *callNode
		stop  *stopNode
	}

	substNode struct {
		pat         string
		repl        string
		global      bool
		insensitive bool
	}

	callNode struct {
		name string
		args []argNode
	}

	argNode struct {
		str   string
		num   int
		isStr bool
	}

	// stopNode carries the optional guard pattern; empty means stop
	// unconditionally.
	stopNode struct {
		guard string
	}

	parser struct {
		src string
		pos int
	}
)

func (p *parser) parse() ([]stmtNode, error) {
	var stmts []stmtNode
	for {
		p.skipSeparators()
		if p.eof() {
			return stmts, nil
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)

		p.skipSpace()
		if p.eof() {
			return stmts, nil
		}
		if c := p.src[p.pos]; c != ';' && c != '\n' {
			return nil, &CompileError{
				Stmt:   s.text,
				Offset: s.off,
				Detail: fmt.Sprintf("unexpected %q after statement", string(c)),
			}
		}
	}
}

func (p *parser) statement() (stmtNode, error) {
	off := p.pos
	c := p.src[p.pos]

	switch {
	case c == 's' && p.pos+1 < len(p.src) && isDelim(p.src[p.pos+1]):
		n, err := p.substitution(off)
		if err != nil {
			return stmtNode{}, err
		}
		return stmtNode{off: off, text: p.src[off:p.pos], subst: n}, nil

	case isIdentStart(c):
		name := p.ident()
		if name == "stop" {
			n, err := p.stopGuard(off)
			if err != nil {
				return stmtNode{}, err
			}
			return stmtNode{off: off, text: p.src[off:p.pos], stop: n}, nil
		}
		var args []argNode
		if !p.eof() && p.src[p.pos] == '(' {
			var err error
			args, err = p.argList(off)
			if err != nil {
				return stmtNode{}, err
			}
		}
		return stmtNode{
			off:  off,
			text: p.src[off:p.pos],
			call: &callNode{name: name, args: args},
		}, nil

	default:
		return stmtNode{}, &CompileError{
			Stmt:   p.restOfStatement(off),
			Offset: off,
			Detail: fmt.Sprintf("expected a substitution, transform call, or stop, got %q", string(c)),
		}
	}
}

// substitution parses s<delim>pattern<delim>replacement<delim>[flags].
// A backslash before the delimiter embeds the delimiter literally; any
// other backslash sequence is passed through untouched so regex escapes
// like \d survive.
func (p *parser) substitution(off int) (*substNode, error) {
	delim := p.src[p.pos+1]
	p.pos += 2

	pat, ok := p.scanUntil(delim)
	if !ok {
		return nil, p.unterminated(off, "substitution pattern")
	}
	repl, ok := p.scanUntil(delim)
	if !ok {
		return nil, p.unterminated(off, "substitution replacement")
	}

	n := &substNode{pat: pat, repl: repl}
	for !p.eof() && isLetter(p.src[p.pos]) {
		switch p.src[p.pos] {
		case 'g':
			n.global = true
		case 'i':
			n.insensitive = true
		default:
			return nil, &CompileError{
				Stmt:   p.restOfStatement(off),
				Offset: off,
				Detail: fmt.Sprintf("unknown substitution flag %q (valid: g, i)", string(p.src[p.pos])),
			}
		}
		p.pos++
	}
	return n, nil
}

// stopGuard parses the optional /pattern/ guard after the stop keyword.
func (p *parser) stopGuard(off int) (*stopNode, error) {
	p.skipSpace()
	if p.eof() || p.src[p.pos] != '/' {
		return &stopNode{}, nil
	}
	p.pos++
	guard, ok := p.scanUntil('/')
	if !ok {
		return nil, p.unterminated(off, "stop guard pattern")
	}
	return &stopNode{guard: guard}, nil
}

func (p *parser) argList(off int) ([]argNode, error) {
	p.pos++ // consume '('
	p.skipSpace()
	if !p.eof() && p.src[p.pos] == ')' {
		p.pos++
		return nil, nil
	}

	var args []argNode
	for {
		p.skipSpace()
		a, err := p.arg(off)
		if err != nil {
			return nil, err
		}
		args = append(args, a)

		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated(off, "argument list")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return args, nil
		default:
			return nil, &CompileError{
				Stmt:   p.restOfStatement(off),
				Offset: off,
				Detail: fmt.Sprintf("expected ',' or ')' in argument list, got %q", string(p.src[p.pos])),
			}
		}
	}
}

func (p *parser) arg(off int) (argNode, error) {
	if p.eof() {
		return argNode{}, p.unterminated(off, "argument list")
	}
	c := p.src[p.pos]
	switch {
	case c == '"':
		s, err := p.quotedString(off)
		if err != nil {
			return argNode{}, err
		}
		return argNode{str: s, isStr: true}, nil

	case c == '-' || isDigit(c):
		start := p.pos
		if c == '-' {
			p.pos++
		}
		for !p.eof() && isDigit(p.src[p.pos]) {
			p.pos++
		}
		text := p.src[start:p.pos]
		n, err := strconv.Atoi(text)
		if err != nil {
			return argNode{}, &CompileError{
				Stmt:   p.restOfStatement(off),
				Offset: off,
				Detail: fmt.Sprintf("bad integer argument %q", text),
			}
		}
		return argNode{num: n}, nil

	default:
		return argNode{}, &CompileError{
			Stmt:   p.restOfStatement(off),
			Offset: off,
			Detail: fmt.Sprintf("expected a quoted string or integer argument, got %q", string(c)),
		}
	}
}

// quotedString parses a double-quoted string. \" and \\ are unescaped;
// any other backslash pair is kept verbatim.
func (p *parser) quotedString(off int) (string, error) {
	p.pos++ // consume opening quote
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\\' && p.pos+1 < len(p.src) {
			next := p.src[p.pos+1]
			if next == '"' || next == '\\' {
				b.WriteByte(next)
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			p.pos += 2
			continue
		}
		if c == '"' {
			p.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", p.unterminated(off, "string argument")
}

// scanUntil consumes up to the next unescaped delim, returning the scanned
// text with \<delim> collapsed to the bare delimiter. ok is false when the
// delimiter never arrives.
func (p *parser) scanUntil(delim byte) (string, bool) {
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\\' && p.pos+1 < len(p.src) {
			next := p.src[p.pos+1]
			if next == delim {
				b.WriteByte(delim)
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			p.pos += 2
			continue
		}
		if c == delim {
			p.pos++
			return b.String(), true
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", false
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) unterminated(off int, what string) *CompileError {
	return &CompileError{
		Stmt:   p.restOfStatement(off),
		Offset: off,
		Detail: "unterminated " + what,
	}
}

// restOfStatement slices out the statement text for error messages: from
// off up to the next separator or end of source.
func (p *parser) restOfStatement(off int) string {
	end := len(p.src)
	if i := strings.IndexAny(p.src[off:], ";\n"); i >= 0 {
		end = off + i
	}
	return strings.TrimSpace(p.src[off:end])
}

func (p *parser) skipSpace() {
	for !p.eof() {
		if c := p.src[p.pos]; c == ' ' || c == '\t' || c == '\r' {
			p.pos++
			continue
		}
		return
	}
}

func (p *parser) skipSeparators() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n', ';':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isDelim reports whether b can delimit a substitution. Any punctuation
// works, as in sed; letters, digits, whitespace, backslash, and the
// statement separator cannot.
func isDelim(b byte) bool {
	if isIdentPart(b) {
		return false
	}
	switch b {
	case ' ', '\t', '\r', '\n', '\\', ';':
		return false
	}
	return b >= '!' && b <= '~'
}
