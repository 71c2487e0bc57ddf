package simtest_test

import (
	"testing"

	sim "github.com/seqlogic/seqsim"
	"github.com/seqlogic/seqsim/simtest"
)

// Two formulations of xor must produce identical output traces over the
// same random stimulus.
func TestCompareXor(t *testing.T) {
	stim := simtest.RandomStimulus(64, "a", "b")

	direct, err := sim.New("xor-direct",
		[]string{"a", "b"},
		[]string{"x"},
		nil,
		[]sim.Update{{
			Out: "x",
			Expr: sim.Or(
				sim.And(sim.Sig("a"), sim.Not(sim.Sig("b"))),
				sim.And(sim.Not(sim.Sig("a")), sim.Sig("b")),
			),
		}},
		stim,
	)
	if err != nil {
		t.Fatal(err)
	}

	// xor as the negation of xnor
	negated, err := sim.New("xor-negated",
		[]string{"a", "b"},
		[]string{"x"},
		nil,
		[]sim.Update{{
			Out: "x",
			Expr: sim.Not(sim.Or(
				sim.And(sim.Sig("a"), sim.Sig("b")),
				sim.And(sim.Not(sim.Sig("a")), sim.Not(sim.Sig("b"))),
			)),
		}},
		stim,
	)
	if err != nil {
		t.Fatal(err)
	}

	simtest.CompareOutputs(t, direct, negated)
}

// A latch pipeline must be equivalent regardless of how the intermediate
// signal is named.
func TestCompareLatchPipeline(t *testing.T) {
	stim := simtest.RandomStimulus(32, "a")

	c1, err := sim.New("pipe1",
		[]string{"a"},
		[]string{"out"},
		[]sim.Latch{{In: "a", Out: "s"}, {In: "s", Out: "d"}},
		[]sim.Update{{Out: "out", Expr: sim.Sig("d")}},
		stim,
	)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := sim.New("pipe2",
		[]string{"a"},
		[]string{"out"},
		[]sim.Latch{{In: "a", Out: "mid"}, {In: "mid", Out: "last"}},
		[]sim.Update{{Out: "out", Expr: sim.Sig("last")}},
		stim,
	)
	if err != nil {
		t.Fatal(err)
	}

	simtest.CompareOutputs(t, c1, c2)
}

func TestRandomStimulus(t *testing.T) {
	stim := simtest.RandomStimulus(16, "a", "b", "c")
	if len(stim) != 3 {
		t.Fatalf("got %d traces, want 3", len(stim))
	}
	for i, name := range []string{"a", "b", "c"} {
		if stim[i].Signal() != name {
			t.Errorf("trace %d bound to %q, want %q", i, stim[i].Signal(), name)
		}
		if stim[i].Len() != 16 {
			t.Errorf("trace %q has length %d, want 16", name, stim[i].Len())
		}
	}
}
