package main

import (
	"github.com/spf13/cobra"

	"github.com/sunholo/pylattice/internal/repl"
)

// newReplCmd builds `pylattice repl`, the interactive type-expression loop.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive type-lattice REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.New().Run()
		},
	}
}
