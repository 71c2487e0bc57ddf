// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

// Env is the variable store for one simulation run: a mutable mapping from
// signal name to its current boolean value. A Circuit creates one Env at the
// start of a run and discards it when the run ends; an Env is never shared
// between runs or goroutines.
type Env struct {
	vars map[string]bool
}

// NewEnv returns an empty variable store.
func NewEnv() *Env {
	return &Env{vars: make(map[string]bool)}
}

// Get returns the current value of name. Referencing a name that has not
// been set is a fatal usage error of kind Unbound.
func (e *Env) Get(name string) (bool, error) {
	v, ok := e.vars[name]
	if !ok {
		return false, errorf(Unbound, "signal %q is not defined", name)
	}
	return v, nil
}

// Set sets name to v, creating the binding if needed.
func (e *Env) Set(name string, v bool) {
	e.vars[name] = v
}
