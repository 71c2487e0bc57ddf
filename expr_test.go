package seqsim_test

import (
	"reflect"
	"testing"

	sim "github.com/seqlogic/seqsim"
)

func TestFreeVars(t *testing.T) {
	td := []struct {
		name string
		e    sim.Expr
		want []string
	}{
		{"signal", sim.Sig("p"), []string{"p"}},
		{"and_not", sim.And(sim.Sig("p"), sim.Not(sim.Sig("q"))), []string{"p", "q"}},
		{"duplicates_kept", sim.Or(sim.Sig("p"), sim.And(sim.Sig("q"), sim.Sig("p"))), []string{"p", "q", "p"}},
		{"left_to_right", sim.Or(sim.And(sim.Sig("c"), sim.Sig("b")), sim.Sig("a")), []string{"c", "b", "a"}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			got := sim.FreeVars(d.e)
			if !reflect.DeepEqual(got, d.want) {
				t.Errorf("FreeVars = %v, want %v", got, d.want)
			}
		})
	}
}

func TestEval(t *testing.T) {
	env := sim.NewEnv()
	env.Set("t", true)
	env.Set("f", false)

	td := []struct {
		name string
		e    sim.Expr
		want bool
	}{
		{"signal_true", sim.Sig("t"), true},
		{"signal_false", sim.Sig("f"), false},
		{"not", sim.Not(sim.Sig("f")), true},
		{"and_tt", sim.And(sim.Sig("t"), sim.Sig("t")), true},
		{"and_tf", sim.And(sim.Sig("t"), sim.Sig("f")), false},
		{"or_ff", sim.Or(sim.Sig("f"), sim.Sig("f")), false},
		{"or_ft", sim.Or(sim.Sig("f"), sim.Sig("t")), true},
		{"nested", sim.Or(sim.And(sim.Sig("t"), sim.Not(sim.Sig("f"))), sim.Sig("f")), true},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			got, err := sim.Eval(d.e, env)
			if err != nil {
				t.Fatal(err)
			}
			if got != d.want {
				t.Errorf("Eval = %v, want %v", got, d.want)
			}
		})
	}
}

func TestEvalUnbound(t *testing.T) {
	env := sim.NewEnv()
	env.Set("a", true)

	// the left operand alone would decide a short-circuit &&; the evaluator
	// must still fail on the unbound right operand.
	_, err := sim.Eval(sim.And(sim.Not(sim.Sig("a")), sim.Sig("missing")), env)
	if err == nil {
		t.Fatal("expected error for unbound signal")
	}
	if k := sim.KindOf(err); k != sim.Unbound {
		t.Errorf("KindOf = %v, want %v", k, sim.Unbound)
	}
}

func TestEvalIdempotent(t *testing.T) {
	env := sim.NewEnv()
	env.Set("a", true)
	env.Set("b", false)
	e := sim.Or(sim.And(sim.Sig("a"), sim.Not(sim.Sig("b"))), sim.Sig("b"))

	first, err := sim.Eval(e, env)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sim.Eval(e, env)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("evaluating twice against an unchanged store: first %v, second %v", first, second)
	}
}
