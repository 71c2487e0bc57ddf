// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
package simtest

import (
	"math/rand"
	"testing"

	"github.com/seqlogic/seqsim"
)

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

// RandomStimulus returns one random trace of the given length per signal
// name, in argument order. Simulation is deterministic, so feeding two
// circuits the same stimulus makes their runs directly comparable.
func RandomStimulus(length int, signals ...string) []*seqsim.Trace {
	traces := make([]*seqsim.Trace, len(signals))
	for i, name := range signals {
		tr := seqsim.NewTrace(name, length)
		for t := 0; t < length; t++ {
			tr.Set(t, randBool())
		}
		traces[i] = tr
	}
	return traces
}

// CompareOutputs runs both circuits and compares their output traces cycle
// by cycle. Every output declared by c1 must be declared by c2 as well, and
// both circuits should have been built over the same stimulus.
func CompareOutputs(t *testing.T, c1, c2 *seqsim.Circuit) {
	t.Helper()

	if err := c1.Run(); err != nil {
		t.Fatalf("%s: %v", c1.Name(), err)
	}
	if err := c2.Run(); err != nil {
		t.Fatalf("%s: %v", c2.Name(), err)
	}
	for _, tr1 := range c1.OutputTraces() {
		tr2 := c2.OutputTrace(tr1.Signal())
		if tr2 == nil {
			t.Fatalf("%s does not declare output %q", c2.Name(), tr1.Signal())
		}
		if tr1.Len() != tr2.Len() {
			t.Fatalf("output %q: %s ran %d cycles, %s ran %d", tr1.Signal(), c1.Name(), tr1.Len(), c2.Name(), tr2.Len())
		}
		for time := 0; time < tr1.Len(); time++ {
			if tr1.At(time) != tr2.At(time) {
				t.Fatalf("output %q differs at cycle %d:\n%s: %s\n%s: %s",
					tr1.Signal(), time, c1.Name(), tr1, c2.Name(), tr2)
			}
		}
	}
}
