// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/seqlogic/seqsim"
)

// stimulusDoc is the YAML testbench format:
//
//	signals:
//	  a: "0101"
//	  b: "0011"
type stimulusDoc struct {
	Signals map[string]string `yaml:"signals"`
}

// ParseStimulus reads a YAML testbench mapping signal names to bit strings
// and returns one trace per signal. Use Description.SetStimulus to bind the
// traces to a circuit's inputs.
func ParseStimulus(r io.Reader) (map[string]*seqsim.Trace, error) {
	var doc stimulusDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode stimulus")
	}
	if len(doc.Signals) == 0 {
		return nil, errors.New("stimulus defines no signals")
	}
	traces := make(map[string]*seqsim.Trace, len(doc.Signals))
	for name, bits := range doc.Signals {
		values, err := parseBits(bits)
		if err != nil {
			return nil, errors.Wrapf(err, "signal %q", name)
		}
		traces[name] = seqsim.TraceOf(name, values...)
	}
	return traces, nil
}
