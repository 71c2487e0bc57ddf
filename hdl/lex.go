// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/seqlogic/seqsim/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Section // .hardware, .inputs, ... Value holds the keyword without the dot.
	Bits    // a run of '0'/'1' characters, Value holds the string.
	Equal
	Arrow
	AndAnd
	OrOr
	Bang
	ParenOpen
	ParenClose
	EOL
)

// Lexer returns a new lexer for circuit descriptions.
func Lexer(r io.Reader) lex.Interface {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return lex.New(rr, lexInit)
}

// isLineSpace reports whitespace that does not terminate a line.
func isLineSpace(r rune) bool {
	return unicode.IsSpace(r) && r != '\n'
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case r == '\n':
		l.Emit(EOL, "end of line")
	case isLineSpace(r):
		l.AcceptWhile(isLineSpace)
		l.Ignore()
	case r == '#':
		// comment to end of line
		l.AcceptWhile(func(r rune) bool { return r != '\n' })
		l.Ignore()
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case r == '0' || r == '1':
		return lexBits
	case r == '.':
		return lexSection
	case r == '=':
		l.Emit(Equal, "=")
	case r == '!':
		l.Emit(Bang, "!")
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == '&':
		if l.Next() == '&' {
			l.Emit(AndAnd, "&&")
			break
		}
		l.Backup()
		l.Emit(Raw, string(r))
		return lexEOF
	case r == '|':
		if l.Next() == '|' {
			l.Emit(OrOr, "||")
			break
		}
		l.Backup()
		l.Emit(Raw, string(r))
		return lexEOF
	case r == '-':
		if l.Next() == '>' {
			l.Emit(Arrow, "->")
			break
		}
		l.Backup()
		l.Emit(Raw, string(r))
		return lexEOF
	default:
		l.Emit(Raw, string(r))
		return lexEOF
	}
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

func lexBits(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	r := l.Next()
	for r == '0' || r == '1' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Bits, buf.String())
	return nil
}

func lexSection(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	if !unicode.IsLetter(r) {
		l.Emit(Raw, string(r))
		return lexEOF
	}
	var buf strings.Builder
	for unicode.IsLetter(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Section, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
