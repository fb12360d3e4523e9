package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/repl"
	"github.com/sunholo/pylattice/internal/ty"
)

// ClassSpec declares one class in a scenario file: its name, the type
// expressions of its base classes (evaluated in declaration order so a
// later class can base on an earlier one), and its own members.
type ClassSpec struct {
	Name    string            `yaml:"name"`
	Bases   []string          `yaml:"bases"`
	Members map[string]string `yaml:"members"`
}

// FunctionSpec declares one function's annotated return type; return types
// are annotation-supplied, never inferred.
type FunctionSpec struct {
	Name    string `yaml:"name"`
	Returns string `yaml:"returns"`
}

// ModuleSpec declares one module and the types of its globals — the view a
// module resolver would hand the kernel for an imported file, so member
// access on Module(name) resolves through global_symbol_ty.
type ModuleSpec struct {
	Name    string            `yaml:"name"`
	Globals map[string]string `yaml:"globals"`
}

// Scenario is the declarative stand-in for a real analyzed source file:
// since the kernel never parses the analyzed language, cmd/pylattice
// drives it from a small YAML description of a
// class graph, a handful of functions, the modules visible to the checked
// code, a symbol's declared types, and the
// type expressions to check, reusing internal/repl's registry and
// type-expression parser rather than building a second one. Declares maps a
// symbol name to one or more declared-type expressions; naming more than
// one exercises internal/symbols.Resolver's conflicting-declarations
// diagnostic (TYC006).
type Scenario struct {
	Classes   []ClassSpec         `yaml:"classes"`
	Functions []FunctionSpec      `yaml:"functions"`
	Modules   []ModuleSpec        `yaml:"modules"`
	Declares  map[string][]string `yaml:"declares"`
	Checks    []string            `yaml:"checks"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &s, nil
}

// Build materializes the scenario into a fresh REPL kernel instance: every
// class and function becomes a Registry entry, exactly as if a user had
// typed the equivalent :class/:attr/:func commands. If cfg names a
// --db cache file, the kernel's revision ledger persists across runs
// instead of living only as long as this process.
func (s *Scenario) Build(cfg *Config) (*repl.REPL, error) {
	var r *repl.REPL
	if cfg != nil && cfg.dbPath != "" {
		d, err := db.Open(cfg.dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening --db %s: %w", cfg.dbPath, err)
		}
		r = repl.NewWithDB(d, os.Stdout)
	} else {
		r = repl.New()
	}

	if cfg != nil {
		for alias, canonical := range cfg.KnownAliases {
			if err := r.Registry.Alias(alias, canonical); err != nil {
				return nil, err
			}
		}
	}

	for _, cs := range s.Classes {
		var bases []ty.Type
		for _, b := range cs.Bases {
			t, err := r.Parser.Parse(b)
			if err != nil {
				return nil, fmt.Errorf("class %s: base %q: %w", cs.Name, b, err)
			}
			bases = append(bases, t)
		}
		class := r.Registry.DefineClass(cs.Name, ty.KnownClassNone, bases)
		for member, expr := range cs.Members {
			t, err := r.Parser.Parse(expr)
			if err != nil {
				return nil, fmt.Errorf("class %s: member %s: %w", cs.Name, member, err)
			}
			if err := r.Registry.SetMember(class, member, t); err != nil {
				return nil, err
			}
		}
	}

	for _, fs := range s.Functions {
		ret, err := r.Parser.Parse(fs.Returns)
		if err != nil {
			return nil, fmt.Errorf("function %s: returns %q: %w", fs.Name, fs.Returns, err)
		}
		r.Registry.DefineFunction(fs.Name, ret)
	}

	for _, ms := range s.Modules {
		r.Registry.DefineModule(ms.Name)
		for sym, expr := range ms.Globals {
			t, err := r.Parser.Parse(expr)
			if err != nil {
				return nil, fmt.Errorf("module %s: global %s: %w", ms.Name, sym, err)
			}
			if err := r.Registry.SetGlobal(ms.Name, sym, t); err != nil {
				return nil, err
			}
		}
	}

	for name, exprs := range s.Declares {
		for _, expr := range exprs {
			t, err := r.Parser.Parse(expr)
			if err != nil {
				return nil, fmt.Errorf("declares %s: %q: %w", name, expr, err)
			}
			r.Registry.Declare(name, t)
		}
	}

	return r, nil
}
