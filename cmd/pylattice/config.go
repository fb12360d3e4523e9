package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the project-level configuration cmd/pylattice loads before
// building a scenario: search roots a real driver would walk for source
// files (unused by the kernel itself, carried for parity with a real
// typeshed.yaml/pylattice.toml) and known-class name overrides, so a
// scenario file can spell a builtin class under a project-local alias.
type Config struct {
	SearchPaths  []string          `yaml:"search_paths" toml:"search_paths"`
	KnownAliases map[string]string `yaml:"known_classes" toml:"known_classes"`

	// dbPath is set from the --db flag, never from a config file: it
	// names a sqlite cache file for the kernel's revision ledger
	// (internal/db.Open) instead of the default in-memory DB.
	dbPath string
}

// LoadConfig reads a project config from path, dispatching on its
// extension: ".toml" uses github.com/BurntSushi/toml, ".yaml"/".yml" uses
// gopkg.in/yaml.v3, so a project can keep either a pylattice.toml or a
// typeshed.yaml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing toml config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing yaml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unrecognized config extension for %s (want .toml, .yaml, or .yml)", path)
	}
	return &cfg, nil
}
