// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a small rune-level lexer runtime driven by state
// functions. Clients define a token set and an initial StateFn; the Lexer
// runs state functions until an item is emitted.
package lex

import (
	"fmt"
	"io"
)

// EOF marks the end of input. It is returned by Next in place of a rune and
// used as the Type of the final item.
const EOF = -1

// Type identifies the type of a lexed item. Values >= 0 are client-defined.
type Type int

// Pos is a rune offset into the input, starting at 0.
type Pos int

// An Item is a single token emitted by the lexer.
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	return fmt.Sprint(i.Value)
}

// A StateFn lexes some input and returns the next state. Returning nil
// resumes the initial state.
type StateFn func(l *Lexer) StateFn

// Interface is the client-facing side of a lexer.
type Interface interface {
	Lex() Item
}

// A Lexer reads runes from its input and turns them into items.
type Lexer struct {
	r     io.RuneReader
	init  StateFn
	state StateFn
	queue []Item

	cur    rune
	pos    Pos // position of cur
	start  Pos // position of the first rune of the pending token
	backed bool
}

// New returns a new lexer reading from r, starting in state init.
func New(r io.RuneReader, init StateFn) *Lexer {
	return &Lexer{r: r, init: init, state: init, pos: -1}
}

// Lex runs the lexer until the next item is available and returns it.
func (l *Lexer) Lex() Item {
	for len(l.queue) == 0 {
		if next := l.state(l); next != nil {
			l.state = next
		} else {
			l.state = l.init
		}
	}
	i := l.queue[0]
	l.queue = l.queue[1:]
	return i
}

// Next returns the next rune in the input, or EOF. After Backup, it returns
// the current rune again.
func (l *Lexer) Next() rune {
	if l.backed {
		l.backed = false
		return l.cur
	}
	r, _, err := l.r.ReadRune()
	if err != nil {
		r = EOF
	}
	l.cur = r
	if r != EOF {
		l.pos++
	}
	if l.start > l.pos {
		l.start = l.pos
	}
	return r
}

// Backup un-reads the current rune. Only a single rune can be backed up.
func (l *Lexer) Backup() {
	l.backed = true
}

// Current returns the rune last returned by Next.
func (l *Lexer) Current() rune {
	return l.cur
}

// AcceptWhile consumes runes while f returns true. The first rune rejected
// by f remains the next rune to be read.
func (l *Lexer) AcceptWhile(f func(r rune) bool) {
	for r := l.Next(); r != EOF && f(r); r = l.Next() {
	}
	l.Backup()
}

// Emit queues an item of the given type. The item position is that of the
// first rune consumed since the previous Emit or Ignore.
func (l *Lexer) Emit(t Type, value interface{}) {
	l.queue = append(l.queue, Item{Type: t, Pos: l.start, Value: value})
	l.start = l.pos + 1
}

// Ignore drops the runes consumed so far from the pending token, so that
// the next item's position starts at the next rune.
func (l *Lexer) Ignore() {
	l.start = l.pos + 1
}
