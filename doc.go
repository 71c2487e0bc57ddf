// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package seqsim implements a cycle-based simulator for synchronous digital
circuits.

A circuit is described by a set of named input and output signals, a set of
single-bit latches and an ordered list of combinational updates (boolean
expressions over signals). Given one fixed-length stimulus Trace per input
signal, the simulator computes the value of every signal for every cycle and
records the trajectory of the declared outputs.

Latches are clocked: a latch output in cycle t holds the value its input had
at the end of cycle t-1, and is forced to false in cycle 0. Updates are
combinational: they are evaluated every cycle, in the order given, and an
update may only reference inputs, latch outputs and updates evaluated earlier
in the same cycle. The simulator does not reorder updates; it certifies that
the supplied order is a legal evaluation order and fails otherwise.

The textual circuit description language is handled by the hdl sub-package;
this package operates on already-built data structures.
*/
package seqsim
