// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the fatal errors reported by the simulator. There is no
// recoverable error path: every Kind aborts the run that raised it.
type Kind int

// Error kinds.
const (
	// Namespace reports a signal name that is not written by exactly one
	// producer (input stimulus, latch or update), or a declared output that
	// no producer drives.
	Namespace Kind = iota + 1

	// Stimulus reports input traces of unequal length, or a stimulus that
	// does not line up with the declared inputs.
	Stimulus

	// Unbound reports an expression or latch referencing a signal name
	// absent from the variable store at evaluation time.
	Unbound

	// Dependency reports an update referencing a signal that is not yet
	// legal in the current cycle's pass: the supplied update order is not a
	// valid evaluation order, usually the sign of a combinational cycle.
	Dependency
)

func (k Kind) String() string {
	switch k {
	case Namespace:
		return "namespace violation"
	case Stimulus:
		return "stimulus shape violation"
	case Unbound:
		return "unbound signal reference"
	case Dependency:
		return "illegal dependency order"
	}
	return "unknown error kind"
}

// Error is the single error channel shared by all simulator components.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// errorf builds a classified error with a captured stack trace.
func errorf(k Kind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: k, Msg: fmt.Sprintf(format, args...)})
}

// KindOf returns the Kind of err, unwrapping as needed, or 0 if err was not
// raised by this package.
func KindOf(err error) Kind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return 0
}
