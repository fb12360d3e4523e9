package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sunholo/pylattice/internal/ty"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestScenarioBuildsClassGraph(t *testing.T) {
	path := writeTemp(t, "scenario.yaml", `
classes:
  - name: Animal
  - name: Dog
    bases: ["Animal"]
    members:
      bark: "Instance(str)"
functions:
  - name: make_dog
    returns: "Instance(Dog)"
checks:
  - "reveal_type(make_dog())"
`)
	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	r, err := scenario.Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dog, ok := r.Registry.Class("Dog")
	if !ok {
		t.Fatal("expected Dog to be registered")
	}
	bark := r.Ops.Member(ty.Class(dog), "bark")
	if bark.String() != "str" {
		t.Errorf("Dog.bark = %v, want str", bark)
	}

	// The check expression evaluates its call suffixes: make_dog() resolves
	// to the annotated return, and the reveal_type wrapper reports it.
	if _, err := r.Parser.Parse(scenario.Checks[0]); err != nil {
		t.Fatalf("parsing check %q: %v", scenario.Checks[0], err)
	}
	reports := r.Parser.Reports()
	if len(reports) != 1 || reports[0].Code != "TYC004" {
		t.Fatalf("expected one TYC004 reveal report, got %v", reports)
	}
	if !strings.Contains(reports[0].Message, "Revealed type is `Dog`") {
		t.Errorf("unexpected reveal message %q", reports[0].Message)
	}
}

func TestConfigLoadsBothFormats(t *testing.T) {
	yamlPath := writeTemp(t, "typeshed.yaml", "search_paths: [\"/src\"]\nknown_classes:\n  Integer: int\n")
	cfg, err := LoadConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadConfig(yaml): %v", err)
	}
	if cfg.KnownAliases["Integer"] != "int" {
		t.Errorf("expected Integer alias to int, got %v", cfg.KnownAliases)
	}

	tomlPath := writeTemp(t, "pylattice.toml", "search_paths = [\"/src\"]\n[known_classes]\nInteger = \"int\"\n")
	cfg2, err := LoadConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadConfig(toml): %v", err)
	}
	if cfg2.KnownAliases["Integer"] != "int" {
		t.Errorf("expected Integer alias to int, got %v", cfg2.KnownAliases)
	}
}

func TestScenarioBuildWithDBPersistsRevision(t *testing.T) {
	path := writeTemp(t, "scenario.yaml", "classes: []\n")
	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	cachePath := filepath.Join(t.TempDir(), "cache.db")
	cfg := &Config{dbPath: cachePath}

	r, err := scenario.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer r.DB.Close()

	last, err := r.DB.LastPersistedRevision()
	if err != nil {
		t.Fatalf("LastPersistedRevision: %v", err)
	}
	if last != r.DB.Revision() {
		t.Errorf("expected --db cache to persist the kernel's revision, got %q want %q", last, r.DB.Revision())
	}
}

func TestScenarioDeclaresConflictReportsTYC006(t *testing.T) {
	path := writeTemp(t, "scenario.yaml", `
classes: []
declares:
  x:
    - "Instance(int)"
    - "None"
`)
	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	r, err := scenario.Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := r.Symbols.PublicType(r.Registry.Symbol("x"), nil)
	if got.String() != "int | None" {
		t.Errorf("expected the conflicting declarations still unioned, got %s", got)
	}
	reports := r.Symbols.Reports()
	if len(reports) != 1 || reports[0].Code != "TYC006" {
		t.Fatalf("expected one TYC006 report, got %v", reports)
	}
}

func TestConfigAliasAppliesToScenario(t *testing.T) {
	path := writeTemp(t, "scenario.yaml", "classes: []\n")
	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	cfg := &Config{KnownAliases: map[string]string{"Integer": "int"}}
	r, err := scenario.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := r.Registry.Class("Integer"); !ok {
		t.Error("expected Integer alias to resolve to the int class")
	}
}

func TestScenarioModulesResolveGlobals(t *testing.T) {
	path := writeTemp(t, "scenario.yaml", `
modules:
  - name: os
    globals:
      sep: "Instance(str)"
`)
	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	r, err := scenario.Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	mod, ok := r.Registry.Module("os")
	if !ok {
		t.Fatal("expected module os to be registered")
	}
	if got := r.Ops.Member(r.DB.InternModule(mod), "sep"); got.String() != "str" {
		t.Errorf("os.sep = %v, want str", got)
	}
	if got := r.Ops.Member(r.DB.InternModule(mod), "nope"); !got.Equals(ty.Unbound) {
		t.Errorf("undeclared global should be Unbound, got %v", got)
	}
}
