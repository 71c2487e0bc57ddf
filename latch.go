// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

// A Latch is one bit of clocked state:
//
//	Out(t) = In(t-1)	for t > 0
//	Out(0) = false
//
// Out is written only by the latch itself, never by an update or an input.
type Latch struct {
	In  string
	Out string
}

// initialize resets the latch to its power-on state. It must run before any
// update is evaluated in cycle 0. It returns the value written to Out.
func (l Latch) initialize(env *Env) bool {
	env.Set(l.Out, false)
	return false
}

// advance loads into Out the value In held at the end of the previous cycle
// and returns it. It reads whatever the store currently binds to In, so it
// must run before the current cycle's inputs and updates are written.
func (l Latch) advance(env *Env) (bool, error) {
	v, err := env.Get(l.In)
	if err != nil {
		return false, err
	}
	env.Set(l.Out, v)
	return v, nil
}
