// Copyright (c) 2025 Visvasity LLC

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the config file picked up from the working
// directory when no -config flag and no trait arguments are given.
const DefaultConfigName = "dyngen.yaml"

// Config represents a dyngen.yaml configuration. Command-line flags
// override the corresponding fields.
type Config struct {
	// InPkg is the package path/name holding the trait declarations.
	InPkg string `yaml:"inpkg,omitempty"`

	// OutPkg is the package name for the generated files. Defaults to
	// the base name of OutDir.
	OutPkg string `yaml:"outpkg,omitempty"`

	// OutDir is the output directory for the generated files.
	OutDir string `yaml:"outdir,omitempty"`

	// Traits lists the trait interfaces to generate dispatch code for.
	Traits []TraitSpec `yaml:"traits"`
}

// TraitSpec names one trait and the concrete types that implement it.
type TraitSpec struct {
	Name  string   `yaml:"name"`
	Impls []string `yaml:"impls"`
}

// LoadConfig reads and parses a dyngen.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses dyngen.yaml content from bytes. The path argument
// is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.InPkg == "" {
		c.InPkg = "."
	}
	if c.OutPkg == "" && c.OutDir != "" {
		c.OutPkg = filepath.Base(c.OutDir)
	}
}

func (c *Config) validate(path string) error {
	if len(c.Traits) == 0 {
		return fmt.Errorf("%s: no traits configured", path)
	}
	for i, ts := range c.Traits {
		if ts.Name == "" {
			return fmt.Errorf("%s: traits[%d]: name must be set", path, i)
		}
		if len(ts.Impls) == 0 {
			return fmt.Errorf("%s: trait %q: at least one impl must be listed", path, ts.Name)
		}
		for _, impl := range ts.Impls {
			if impl == "" {
				return fmt.Errorf("%s: trait %q: empty impl name", path, ts.Name)
			}
		}
	}
	return nil
}

// parseTraitArg parses a command-line trait spec of the form
// "Trait=Impl1,Impl2".
func parseTraitArg(arg string) (TraitSpec, error) {
	name, impls, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return TraitSpec{}, fmt.Errorf("invalid trait argument %q; want 'Trait=Impl1,Impl2'", arg)
	}
	var ts TraitSpec
	ts.Name = name
	for _, impl := range strings.Split(impls, ",") {
		if impl = strings.TrimSpace(impl); impl != "" {
			ts.Impls = append(ts.Impls, impl)
		}
	}
	if len(ts.Impls) == 0 {
		return TraitSpec{}, fmt.Errorf("trait argument %q lists no impl types", arg)
	}
	return ts, nil
}
