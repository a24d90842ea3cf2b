// Package config loads defaults for the numparse command from YAML.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/numparse-go/numparse"
)

// ValidFormats lists the output formats the command can render.
var ValidFormats = []string{"text", "json"}

// Config holds defaults applied when the matching flag is not given.
type Config struct {
	Base    int    `yaml:"base"`    // 0 for prefix detection, otherwise 2..36
	Signed  bool   `yaml:"signed"`  // accept a leading sign
	Format  string `yaml:"format"`  // text or json
	Workers int    `yaml:"workers"` // files scanned concurrently
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Base:    numparse.AutoBase,
		Signed:  true,
		Format:  "text",
		Workers: 4,
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults; a named file must exist. NUMPARSE_BASE and NUMPARSE_FORMAT
// override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("NUMPARSE_BASE"); v != "" {
		base, err := numparse.ParseInt(v, numparse.AutoBase)
		if err != nil {
			return fmt.Errorf("invalid NUMPARSE_BASE: %w", err)
		}
		c.Base = int(base)
	}
	if v := os.Getenv("NUMPARSE_FORMAT"); v != "" {
		c.Format = v
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if !numparse.ValidBase(c.Base) {
		return fmt.Errorf("invalid base: %d (valid: 0 or 2..36)", c.Base)
	}
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", c.Format, ValidFormats)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers: %d (must be at least 1)", c.Workers)
	}
	return nil
}
