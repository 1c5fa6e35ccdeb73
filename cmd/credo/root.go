// Package main provides the entry point for the credo CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/credo-go/credo/internal/credo"
)

// NewRootCmd creates the root command for credo.
//
// Flag parsing is disabled: the pipeline's own parse-options stage owns
// the switch table, including switches plugins register at run time, so
// the raw argument list must reach it untouched.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credo [command] [options] [paths]",
		Short: "Static analysis driven by an extensible execution pipeline",
		Long: `credo analyzes source files with a configurable set of checks and
reports the findings. Commands, switches and pipeline stages can be
extended by plugins at run time.

Run 'credo help' for the full command and switch list.`,
		Version:            getVersion(),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := credo.Run(args,
				credo.WithStdout(cmd.OutOrStdout()),
				credo.WithStderr(cmd.ErrOrStderr()),
			)
			if status != 0 {
				return &exitError{status: status}
			}
			return nil
		},
	}

	return cmd
}

// exitError carries a non-zero exit status out of cobra's Execute.
type exitError struct {
	status int
}

func (e *exitError) Error() string { return "" }

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.status)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
