// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqlogic/seqsim/hdl"
)

func newRunCmd() *cobra.Command {
	var stimulusFile string

	cmd := &cobra.Command{
		Use:   "run <circuit file>",
		Short: "Simulate a circuit and print its traces",
		Long: `Run parses a circuit description, simulates one cycle per stimulus value
and prints the input traces followed by the output traces, one signal per
line, earliest cycle first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			d, err := parseFile(args[0])
			if err != nil {
				return err
			}
			if stimulusFile != "" {
				f, err := os.Open(stimulusFile)
				if err != nil {
					return err
				}
				traces, err := hdl.ParseStimulus(f)
				f.Close()
				if err != nil {
					return err
				}
				if err := d.SetStimulus(traces); err != nil {
					return err
				}
			}

			c, err := d.Circuit()
			if err != nil {
				return err
			}
			logger.Debug("circuit loaded",
				"name", c.Name(),
				"inputs", len(d.Inputs),
				"latches", len(d.Latches),
				"updates", len(d.Updates),
				"cycles", c.Len())

			if err := c.Run(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, tr := range c.InputTraces() {
				fmt.Fprintln(w, tr)
			}
			for _, tr := range c.OutputTraces() {
				fmt.Fprintln(w, tr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stimulusFile, "stimulus", "", "YAML stimulus file overriding the .simulate section")
	return cmd
}
