// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

// An Expr is a boolean expression over named signals. The set of variants is
// closed: expressions are built from Sig, And, Or and Not only. An Expr is
// immutable once built and forms a strict tree (no sharing between updates).
type Expr interface {
	expr()
}

type signal struct{ name string }
type and struct{ a, b Expr }
type or struct{ a, b Expr }
type not struct{ x Expr }

func (signal) expr() {}
func (and) expr()    {}
func (or) expr()     {}
func (not) expr()    {}

// Sig returns an expression reading the current value of the named signal.
func Sig(name string) Expr { return signal{name} }

// And returns the conjunction of a and b.
func And(a, b Expr) Expr { return and{a, b} }

// Or returns the disjunction of a and b.
func Or(a, b Expr) Expr { return or{a, b} }

// Not returns the negation of x.
func Not(x Expr) Expr { return not{x} }

// Eval computes the value of e against the current contents of env. Both
// operands of And and Or are always evaluated: an unbound signal reference
// fails the evaluation regardless of the other operand's value.
func Eval(e Expr, env *Env) (bool, error) {
	switch e := e.(type) {
	case signal:
		return env.Get(e.name)
	case and:
		a, err := Eval(e.a, env)
		if err != nil {
			return false, err
		}
		b, err := Eval(e.b, env)
		if err != nil {
			return false, err
		}
		return a && b, nil
	case or:
		a, err := Eval(e.a, env)
		if err != nil {
			return false, err
		}
		b, err := Eval(e.b, env)
		if err != nil {
			return false, err
		}
		return a || b, nil
	case not:
		x, err := Eval(e.x, env)
		if err != nil {
			return false, err
		}
		return !x, nil
	}
	panic("seqsim: unknown expression variant")
}

// FreeVars returns the signal names e depends on, in left-to-right order of
// appearance. Duplicates are preserved.
func FreeVars(e Expr) []string {
	return appendFreeVars(nil, e)
}

func appendFreeVars(vars []string, e Expr) []string {
	switch e := e.(type) {
	case signal:
		return append(vars, e.name)
	case and:
		return appendFreeVars(appendFreeVars(vars, e.a), e.b)
	case or:
		return appendFreeVars(appendFreeVars(vars, e.a), e.b)
	case not:
		return appendFreeVars(vars, e.x)
	}
	panic("seqsim: unknown expression variant")
}
