package config

import (
	"fmt"
)

// Config represents an assay.yaml configuration file.
// All values are optional and act as defaults for assay flags.
// CLI flags always override config values.
type Config struct {
	// Format is the default output format: json, table, or yaml.
	Format string `yaml:"format"`
	// NoColor disables colored table output.
	NoColor bool `yaml:"no_color"`
	// LogLevel is the minimum CLI log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Report holds report command defaults.
	Report ReportConfig `yaml:"report"`
}

// ReportConfig holds report command defaults from the config file.
type ReportConfig struct {
	// Out is the default output path for report frames.
	// Empty means stdout.
	Out string `yaml:"out"`
}

// validFormats and validLogLevels gate config values at load time so a
// bad file fails fast instead of at first render.
var (
	validFormats   = map[string]bool{"": true, "json": true, "table": true, "yaml": true}
	validLogLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks config values that have a closed set of valid inputs.
func (c *Config) Validate() error {
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q (must be json, table, or yaml)", c.Format)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}
