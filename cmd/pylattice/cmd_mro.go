package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newMROCmd builds `pylattice mro <scenario.yaml> <ClassName>`: prints every
// C3 linearization possibility the class graph computes for ClassName, one
// line per possibility.
func newMROCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mro <scenario.yaml> <ClassName>",
		Short: "Print a class's C3 linearization possibilities",
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
			class, ok := r.Registry.Class(args[1])
			if !ok {
				return fmt.Errorf("unknown class %q", args[1])
			}

			for i, p := range r.Graph.MRO(class, r.Checker.Object) {
				if p.Failed {
					fmt.Printf("[%d] %s\n", i, red("no consistent linearization"))
					continue
				}
				names := make([]string, len(p.Classes))
				for j, c := range p.Classes {
					names[j] = c.Name
				}
				fmt.Printf("[%d] %s\n", i, strings.Join(names, " -> "))
			}
			return nil
		},
	}
}
