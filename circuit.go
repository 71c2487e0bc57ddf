// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import "github.com/pkg/errors"

// Circuit is a runnable circuit simulation. It owns the static structure
// (inputs, outputs, latches, updates), the input stimulus, the recorded
// output traces and, for the duration of one run, the variable store.
//
// A Circuit is validated at construction and immutable afterwards, except
// for the output trace contents and the per-run store. Re-running the same
// circuit reproduces bit-identical traces.
type Circuit struct {
	name    string
	inputs  []string
	outputs []string
	latches []Latch
	updates []Update

	stimulus []*Trace          // index-aligned with inputs
	results  map[string]*Trace // declared output name -> recorded trace

	simLen int
	seed   []string // names legal before any update runs: inputs ∪ latch outputs

	env *Env // live store, created by Initialize, one per run
}

// New validates the static structure of a circuit and returns it ready to
// run. It fails with a Stimulus error when the input traces do not line up
// with the declared inputs or have unequal lengths, and with a Namespace
// error when a signal name is not written by exactly one producer or a
// declared output is not driven at all.
func New(name string, inputs, outputs []string, latches []Latch, updates []Update, stimulus []*Trace) (*Circuit, error) {
	if len(stimulus) != len(inputs) {
		return nil, errorf(Stimulus, "%s: %d inputs declared but %d stimulus traces supplied", name, len(inputs), len(stimulus))
	}
	simLen := 0
	for i, tr := range stimulus {
		if tr.Signal() != inputs[i] {
			return nil, errorf(Stimulus, "%s: stimulus trace %d is for %q, want input %q", name, i, tr.Signal(), inputs[i])
		}
		if i == 0 {
			simLen = tr.Len()
		} else if tr.Len() != simLen {
			return nil, errorf(Stimulus, "%s: input traces must all have the same length: %q has %d values, want %d", name, tr.Signal(), tr.Len(), simLen)
		}
	}

	// Every signal name must have exactly one producer among the inputs,
	// the latch outputs and the update outputs.
	producers := make(map[string]string, len(inputs)+len(latches)+len(updates))
	claim := func(n, producer string) error {
		if prev, ok := producers[n]; ok {
			return errorf(Namespace, "%s: signal %q is driven by both %s and %s", name, n, prev, producer)
		}
		producers[n] = producer
		return nil
	}
	for _, n := range inputs {
		if err := claim(n, "an input"); err != nil {
			return nil, err
		}
	}
	for _, l := range latches {
		if err := claim(l.Out, "a latch"); err != nil {
			return nil, err
		}
	}
	for _, u := range updates {
		if err := claim(u.Out, "an update"); err != nil {
			return nil, err
		}
	}
	results := make(map[string]*Trace, len(outputs))
	for _, n := range outputs {
		if _, ok := producers[n]; !ok {
			return nil, errorf(Namespace, "%s: output %q is not driven by any input, latch or update", name, n)
		}
		results[n] = NewTrace(n, simLen)
	}

	seed := make([]string, 0, len(inputs)+len(latches))
	seed = append(seed, inputs...)
	for _, l := range latches {
		seed = append(seed, l.Out)
	}

	return &Circuit{
		name:     name,
		inputs:   inputs,
		outputs:  outputs,
		latches:  latches,
		updates:  updates,
		stimulus: stimulus,
		results:  results,
		simLen:   simLen,
		seed:     seed,
	}, nil
}

// Name returns the circuit name.
func (c *Circuit) Name() string { return c.name }

// Len returns the simulation length in cycles, the common length of the
// input traces.
func (c *Circuit) Len() int { return c.simLen }

// InputTraces returns the stimulus traces in declared input order.
func (c *Circuit) InputTraces() []*Trace { return c.stimulus }

// OutputTrace returns the recorded trace for the named output, or nil if
// the name is not a declared output.
func (c *Circuit) OutputTrace(name string) *Trace { return c.results[name] }

// OutputTraces returns the recorded output traces in declared output order.
func (c *Circuit) OutputTraces() []*Trace {
	out := make([]*Trace, len(c.outputs))
	for i, n := range c.outputs {
		out[i] = c.results[n]
	}
	return out
}

// record copies v into the result trace at the given time when name is a
// declared output. Every store write during a run flows through here so
// that input-, latch- and update-driven outputs are all captured.
func (c *Circuit) record(name string, v bool, time int) {
	if tr, ok := c.results[name]; ok {
		tr.Set(time, v)
	}
}

// loadInputs writes the stimulus value at the given time for every input.
func (c *Circuit) loadInputs(time int) {
	for i, name := range c.inputs {
		v := c.stimulus[i].At(time)
		c.env.Set(name, v)
		c.record(name, v, time)
	}
}

// performUpdates evaluates every update, in list order, for the given time.
// An update may only reference names in the legal set: the inputs, the
// latch outputs and the outputs of updates already evaluated in this pass.
// The legal set is rebuilt from scratch every cycle.
func (c *Circuit) performUpdates(time int) error {
	legal := make(map[string]bool, len(c.seed)+len(c.updates))
	for _, n := range c.seed {
		legal[n] = true
	}
	for _, u := range c.updates {
		for _, dep := range FreeVars(u.Expr) {
			if !legal[dep] {
				return errorf(Dependency, "%s: update %q references %q before it is defined in cycle %d; the update order may hide a combinational cycle", c.name, u.Out, dep, time)
			}
		}
		v, err := Eval(u.Expr, c.env)
		if err != nil {
			return err
		}
		c.env.Set(u.Out, v)
		c.record(u.Out, v, time)
		legal[u.Out] = true
	}
	return nil
}

// Initialize runs cycle 0: it creates a fresh variable store, loads the
// stimulus values at time 0, forces every latch output to false and runs the
// update pass. It must be called before NextCycle.
func (c *Circuit) Initialize() error {
	c.env = NewEnv()
	c.loadInputs(0)
	for _, l := range c.latches {
		c.record(l.Out, l.initialize(c.env), 0)
	}
	return c.performUpdates(0)
}

// NextCycle runs one simulation cycle at the given time, which must increase
// strictly by one from cycle to cycle. Latches advance first, reading the
// store as the previous cycle left it, then the stimulus values for this
// cycle are loaded and the update pass runs.
func (c *Circuit) NextCycle(time int) error {
	if c.env == nil {
		panic("seqsim: NextCycle called before Initialize")
	}
	for _, l := range c.latches {
		v, err := l.advance(c.env)
		if err != nil {
			return err
		}
		c.record(l.Out, v, time)
	}
	c.loadInputs(time)
	return c.performUpdates(time)
}

// Run simulates the whole stimulus: cycle 0 via Initialize, then every
// remaining cycle in order. On success the output traces are fully
// populated; on error the run is aborted and no partial result should be
// used.
func (c *Circuit) Run() error {
	if c.simLen == 0 {
		return nil
	}
	if err := c.Initialize(); err != nil {
		return err
	}
	for t := 1; t < c.simLen; t++ {
		if err := c.NextCycle(t); err != nil {
			return errors.Wrapf(err, "cycle %d", t)
		}
	}
	return nil
}
