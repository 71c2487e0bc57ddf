// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import "strings"

// A Trace is a fixed-length, time-indexed sequence of boolean values bound
// to one signal name. Traces serve both as read-only stimulus for input
// signals and as the recording target for output signals. The length is
// fixed at creation; only the values mutate.
type Trace struct {
	signal string
	values []bool
}

// NewTrace returns an all-false trace of the given length for signal.
func NewTrace(signal string, length int) *Trace {
	return &Trace{signal: signal, values: make([]bool, length)}
}

// TraceOf returns a trace for signal holding the given values.
func TraceOf(signal string, values ...bool) *Trace {
	t := NewTrace(signal, len(values))
	copy(t.values, values)
	return t
}

// Signal returns the name of the signal the trace is bound to.
func (t *Trace) Signal() string { return t.signal }

// Len returns the number of cycles the trace covers.
func (t *Trace) Len() int { return len(t.values) }

// At returns the value at the given time index.
func (t *Trace) At(time int) bool { return t.values[time] }

// Set sets the value at the given time index.
func (t *Trace) Set(time int, v bool) { t.values[time] = v }

// String renders the trace as a string of '1'/'0' characters, earliest
// cycle first, followed by a space and the signal name.
func (t *Trace) String() string {
	var b strings.Builder
	b.Grow(len(t.values) + 1 + len(t.signal))
	for _, v := range t.values {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(' ')
	b.WriteString(t.signal)
	return b.String()
}
