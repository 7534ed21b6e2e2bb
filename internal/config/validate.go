package config

import (
	"fmt"
	"slices"
)

var (
	validStoreFormats = []string{"", FormatJSON, FormatYAML, FormatSQLite}
	validLogFormats   = []string{"console", "json"}
	validLogLevels    = []string{"debug", "info", "warn", "error"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStore(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateStore() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must be set")
	}
	if !slices.Contains(validStoreFormats, c.Store.Format) {
		return fmt.Errorf("store.format: unsupported value %q (use json, yaml, or sqlite)", c.Store.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(validLogFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	if !slices.Contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
