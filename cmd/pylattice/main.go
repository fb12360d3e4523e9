package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Color functions for pretty output.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var (
	configPath string
	dbPath     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pylattice",
		Short: "A gradual type lattice and inference kernel",
		Long: bold("pylattice") + ` drives the type-lattice kernel (internal/ty,
internal/relations, internal/classgraph, internal/operators) from a
declarative scenario file, standing in for the real source-file driver
the kernel's own non-goals leave external.

Subcommands: ` + cyan("check") + `, ` + cyan("reveal") + `, ` + cyan("mro") + `, ` + cyan("repl") + `.`,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "project config (pylattice.toml or typeshed.yaml)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite file backing the kernel's revision ledger (default: in-memory)")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newRevealCmd())
	root.AddCommand(newMROCmd())
	root.AddCommand(newReplCmd())
	return root
}

func loadConfigFlag() (*Config, error) {
	var cfg *Config
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dbPath != "" {
		if cfg == nil {
			cfg = &Config{}
		}
		cfg.dbPath = dbPath
	}
	return cfg, nil
}
