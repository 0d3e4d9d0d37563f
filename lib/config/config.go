// Copyright 2026 The GLBForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for GLBForge tools.
//
// Configuration is loaded from a single YAML file specified by:
//   - GLBFORGE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery; command-line flags
// override individual values after the file is loaded. This keeps
// configuration deterministic and auditable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for GLBForge tools.
type Config struct {
	// Export configures the export pipeline defaults.
	Export ExportConfig `yaml:"export"`
}

// ExportConfig holds export pipeline defaults. Each field corresponds
// to a cmd/glbforge-export flag; flags win over file values.
type ExportConfig struct {
	// IncludeAttributes exports each group's key/value attributes as
	// the node's extras object.
	IncludeAttributes bool `yaml:"include_attributes"`

	// Dump prints an indented rendering of the exported document to
	// stderr after a successful export.
	Dump bool `yaml:"dump"`

	// Checksum prints the BLAKE3 hash of the written container.
	Checksum bool `yaml:"checksum"`

	// Generator is recorded in the document's asset descriptor when
	// non-empty.
	Generator string `yaml:"generator"`
}

// Default returns the default configuration. These are the values used
// when no config file is given; loading a file overrides them.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			IncludeAttributes: true,
			Dump:              false,
			Checksum:          false,
			Generator:         "",
		},
	}
}

// Load loads configuration from the file named by the GLBFORGE_CONFIG
// environment variable. Fails if the variable is not set; use
// [LoadFile] when the path comes from a flag.
func Load() (*Config, error) {
	configPath := os.Getenv("GLBFORGE_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("GLBFORGE_CONFIG environment variable not set; " +
			"set it to the path of your glbforge.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for errors. The generator string
// is recorded verbatim in the exported document's asset descriptor and
// appears in logs, so control characters are rejected.
func (c *Config) Validate() error {
	for _, r := range c.Export.Generator {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("export.generator contains control character %q", r)
		}
	}
	return nil
}
