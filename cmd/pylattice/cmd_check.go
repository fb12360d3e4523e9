package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sunholo/pylattice/internal/errors"
)

// newCheckCmd builds `pylattice check <scenario.yaml>`: it evaluates every
// expression under `checks:` — call suffixes go through call() so a
// reveal_type(...) check produces its TYC004 diagnostic and a call on a
// non-callable its TYC001/002/003 — then folds every `declares:` symbol's
// declared types through internal/symbols.Resolver, printing a
// TYC006 conflicting-declarations diagnostic where applicable. The exit
// status is non-zero if any check expression fails to parse or any call
// outcome is NotCallable.
func newCheckCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>",
		Short: "Run a scenario's checks and print diagnostics",
		Args:  cobra.ExactArgs(1),
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

			failed := false
			for _, expr := range scenario.Checks {
				if _, err := r.Parser.Parse(expr); err != nil {
					failed = true
					fmt.Printf("%s %s: %v\n", red("parse error:"), expr, err)
					continue
				}
				for _, rep := range r.Parser.Reports() {
					if rep.Code == errors.TYC001 || rep.Code == errors.TYC002 || rep.Code == errors.TYC003 {
						failed = true
					}
					printReport(asJSON, rep)
				}
			}

			declNames := make([]string, 0, len(scenario.Declares))
			for name := range scenario.Declares {
				declNames = append(declNames, name)
			}
			sort.Strings(declNames)
			for _, name := range declNames {
				r.Symbols.PublicType(r.Registry.Symbol(name), nil)
			}
			for _, rep := range r.Symbols.Reports() {
				printReport(asJSON, rep)
			}

			if failed {
				return fmt.Errorf("one or more checks failed")
			}
			fmt.Println(green("all checks passed"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print diagnostics as newline-delimited JSON")
	return cmd
}

func printReport(asJSON bool, rep *errors.Report) {
	if !asJSON {
		fmt.Printf("  %s %s\n", yellow(rep.Code), rep.Message)
		return
	}
	encoded := errors.NewTypecheck("", rep.Code, rep.Message, nil)
	data, _ := json.Marshal(encoded)
	fmt.Println(string(data))
}
