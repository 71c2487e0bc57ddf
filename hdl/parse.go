// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl parses textual circuit descriptions into the data structures
// of the seqsim package.
//
// A description is line-oriented and split into sections:
//
//	.hardware counter
//	.inputs   a b
//	.outputs  x
//	.latches  a -> la
//	          b -> lb
//	.update
//	x = la && !b || (a && b)
//	.simulate
//	a = 0101
//	b = 0011
//
// Expressions use the operators ! (negation, binds tightest), && and ||
// (binds loosest), plus parentheses. '#' starts a comment running to the end
// of the line. The .simulate section may be omitted when the stimulus is
// supplied separately, for example from a YAML testbench (see
// ParseStimulus).
package hdl

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/seqlogic/seqsim"
	"github.com/seqlogic/seqsim/internal/lex"
)

// A Description is a parsed circuit description. It carries the structural
// data and the stimulus exactly as written; validation happens when the
// simulator is built from it.
type Description struct {
	Name     string
	Inputs   []string
	Outputs  []string
	Latches  []seqsim.Latch
	Updates  []seqsim.Update
	Stimulus []*seqsim.Trace
}

// Circuit validates the description and builds a simulator for it.
func (d *Description) Circuit() (*seqsim.Circuit, error) {
	return seqsim.New(d.Name, d.Inputs, d.Outputs, d.Latches, d.Updates, d.Stimulus)
}

// SetStimulus replaces the description's stimulus with the given traces,
// matched to the declared inputs by name.
func (d *Description) SetStimulus(traces map[string]*seqsim.Trace) error {
	st := make([]*seqsim.Trace, len(d.Inputs))
	for i, name := range d.Inputs {
		tr, ok := traces[name]
		if !ok {
			return errors.Errorf("no stimulus for input %q", name)
		}
		st[i] = tr
	}
	d.Stimulus = st
	return nil
}

// Parse reads a circuit description from r.
func Parse(r io.Reader) (*Description, error) {
	p := &parser{l: Lexer(r), line: 1, d: &Description{}}
	return p.parse()
}

// ParseString reads a circuit description from s.
func ParseString(s string) (*Description, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	l    lex.Interface
	i    lex.Item
	line int
	d    *Description
}

// next advances to the next item, tracking line numbers.
func (p *parser) next() {
	if p.i.Type == EOL {
		p.line++
	}
	p.i = p.l.Lex()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *parser) parse() (*Description, error) {
	section := ""
	for {
		p.next()
		switch p.i.Type {
		case EOF:
			if p.d.Name == "" {
				return nil, p.errorf("missing .hardware section")
			}
			return p.d, nil
		case EOL:
			continue
		case Section:
			name := p.i.Value.(string)
			switch name {
			case "hardware":
				if err := p.hardwareLine(); err != nil {
					return nil, err
				}
				section = ""
			case "inputs":
				names, err := p.identList()
				if err != nil {
					return nil, err
				}
				p.d.Inputs = names
				section = ""
			case "outputs":
				names, err := p.identList()
				if err != nil {
					return nil, err
				}
				p.d.Outputs = names
				section = ""
			case "latches", "update", "simulate":
				if err := p.expectEndOfLine(); err != nil {
					return nil, err
				}
				section = name
			default:
				return nil, p.errorf("unknown section .%s", name)
			}
		case Ident:
			var err error
			switch section {
			case "latches":
				err = p.latchLine()
			case "update":
				err = p.updateLine()
			case "simulate":
				err = p.simulateLine()
			default:
				err = p.errorf("unexpected %q outside of a section body", p.i)
			}
			if err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf("unexpected %q", p.i)
		}
	}
}

// hardwareLine parses the circuit name: .hardware <ident>
func (p *parser) hardwareLine() error {
	p.next()
	if p.i.Type != Ident {
		return p.errorf("expected circuit name after .hardware")
	}
	p.d.Name = p.i.Value.(string)
	p.next()
	return p.endOfLine()
}

// identList parses the remainder of the current line as signal names.
func (p *parser) identList() ([]string, error) {
	var names []string
	for {
		p.next()
		switch p.i.Type {
		case Ident:
			names = append(names, p.i.Value.(string))
		case EOL, EOF:
			if len(names) == 0 {
				return nil, p.errorf("expected at least one signal name")
			}
			return names, nil
		default:
			return nil, p.errorf("expected signal name, got %q", p.i)
		}
	}
}

// latchLine parses one latch declaration: <in> -> <out>
// The current item is the input signal name.
func (p *parser) latchLine() error {
	in := p.i.Value.(string)
	p.next()
	if p.i.Type != Arrow {
		return p.errorf("expected -> after latch input %q", in)
	}
	p.next()
	if p.i.Type != Ident {
		return p.errorf("expected latch output name after ->")
	}
	out := p.i.Value.(string)
	p.d.Latches = append(p.d.Latches, seqsim.Latch{In: in, Out: out})
	p.next()
	return p.endOfLine()
}

// updateLine parses one update: <out> = <expression>
// The current item is the output signal name.
func (p *parser) updateLine() error {
	out := p.i.Value.(string)
	p.next()
	if p.i.Type != Equal {
		return p.errorf("expected = after update output %q", out)
	}
	p.next()
	e, err := p.orExpr()
	if err != nil {
		return err
	}
	p.d.Updates = append(p.d.Updates, seqsim.Update{Out: out, Expr: e})
	return p.endOfLine()
}

// simulateLine parses one stimulus line: <input> = <bits>
// The current item is the input signal name.
func (p *parser) simulateLine() error {
	name := p.i.Value.(string)
	p.next()
	if p.i.Type != Equal {
		return p.errorf("expected = after input %q", name)
	}
	p.next()
	if p.i.Type != Bits {
		return p.errorf("expected a string of 0/1 values for input %q", name)
	}
	values, err := parseBits(p.i.Value.(string))
	if err != nil {
		return p.errorf("input %q: %s", name, err)
	}
	p.d.Stimulus = append(p.d.Stimulus, seqsim.TraceOf(name, values...))
	p.next()
	return p.endOfLine()
}

// endOfLine checks that the current item terminates a line.
func (p *parser) endOfLine() error {
	if p.i.Type != EOL && p.i.Type != EOF {
		return p.errorf("unexpected %q at end of line", p.i)
	}
	return nil
}

// expectEndOfLine consumes the next item and checks it terminates a line.
func (p *parser) expectEndOfLine() error {
	p.next()
	return p.endOfLine()
}

// orExpr = andExpr { "||" andExpr }
func (p *parser) orExpr() (seqsim.Expr, error) {
	e, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.i.Type == OrOr {
		p.next()
		rhs, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		e = seqsim.Or(e, rhs)
	}
	return e, nil
}

// andExpr = unary { "&&" unary }
func (p *parser) andExpr() (seqsim.Expr, error) {
	e, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.i.Type == AndAnd {
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		e = seqsim.And(e, rhs)
	}
	return e, nil
}

// unary = "!" unary | "(" orExpr ")" | ident
// On return the current item is the first item after the expression.
func (p *parser) unary() (seqsim.Expr, error) {
	switch p.i.Type {
	case Bang:
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return seqsim.Not(x), nil
	case ParenOpen:
		p.next()
		e, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		if p.i.Type != ParenClose {
			return nil, p.errorf("expected closing parenthesis, got %q", p.i)
		}
		p.next()
		return e, nil
	case Ident:
		e := seqsim.Sig(p.i.Value.(string))
		p.next()
		return e, nil
	default:
		return nil, p.errorf("expected signal name, ! or parenthesized expression, got %q", p.i)
	}
}

// parseBits converts a string of '0'/'1' characters to boolean values.
func parseBits(s string) ([]bool, error) {
	values := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			values[i] = true
		default:
			return nil, errors.Errorf("invalid bit %q, want 0 or 1", s[i])
		}
	}
	return values, nil
}
