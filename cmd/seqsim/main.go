// Copyright 2026 The seqsim Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command seqsim simulates synchronous circuits described in the hdl
// language and prints the resulting signal traces.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqlogic/seqsim/hdl"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "seqsim",
		Short: "Cycle-based simulator for synchronous digital circuits",
		Long: `seqsim simulates synchronous digital circuits described as named signals,
single-bit latches and combinational updates. It reads a textual circuit
description, applies the per-cycle input stimulus and prints the trace of
every input and output signal.`,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (info, debug)")

	rootCmd.AddCommand(
		newRunCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seqsim version %s\n", version)
		},
	}
}

// newLogger creates a leveled slog.Logger writing to the command's error
// stream. An unknown or missing level defaults to info.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	lvl := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}

// parseFile reads and parses a circuit description file.
func parseFile(path string) (*hdl.Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return hdl.Parse(f)
}
