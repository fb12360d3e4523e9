package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunholo/pylattice/internal/operators"
)

// newRevealCmd builds `pylattice reveal <scenario.yaml> <expr>`: parses expr
// against the scenario's registry and prints its type, the non-interactive
// equivalent of the REPL's bare-expression echo.
func newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <scenario.yaml> <expr>",
		Short: "Evaluate a type expression against a scenario and print its type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFlag()
			if err != nil {
				return err
			}
			scenario, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			r, err := scenario.Build(cfg)
			if err != nil {
				return err
			}
			t, err := r.Parser.Parse(args[1])
			if err != nil {
				return err
			}
			fmt.Println(operators.TruncateForDisplay(t.String(), 200))
			return nil
		},
	}
}
