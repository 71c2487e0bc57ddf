// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

// An Update is one bit of combinational logic: every cycle, Out is assigned
// the value of Expr evaluated against the current store. Out is written only
// by this update, never by a latch or an input.
type Update struct {
	Out  string
	Expr Expr
}
