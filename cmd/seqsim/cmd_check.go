// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <circuit file>",
		Short: "Parse and validate a circuit without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseFile(args[0])
			if err != nil {
				return err
			}
			c, err := d.Circuit()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d inputs, %d outputs, %d latches, %d updates, %d cycles\n",
				c.Name(), len(d.Inputs), len(d.Outputs), len(d.Latches), len(d.Updates), c.Len())
			return nil
		},
	}
}
