package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeStore(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeStore() error {
	var err error
	c.Store.Path = strings.TrimSpace(c.Store.Path)
	if c.Store.Path == "" {
		c.Store.Path = filepath.Join(defaultDataDir(), defaultStoreFile)
	}
	if c.Store.Path, err = expandPath(c.Store.Path); err != nil {
		return fmt.Errorf("store.path: %w", err)
	}
	c.Store.BackupDir = strings.TrimSpace(c.Store.BackupDir)
	if c.Store.BackupDir == "" {
		c.Store.BackupDir = filepath.Join(filepath.Dir(c.Store.Path), "backups")
	}
	if c.Store.BackupDir, err = expandPath(c.Store.BackupDir); err != nil {
		return fmt.Errorf("store.backup_dir: %w", err)
	}
	c.Store.Format = strings.ToLower(strings.TrimSpace(c.Store.Format))
	if c.Store.Format == "yml" {
		c.Store.Format = FormatYAML
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
	return nil
}

// ApplyStoreOverrides replaces the store path and format with command-line
// values. Empty values keep the configured ones.
func (c *Config) ApplyStoreOverrides(path, format string) error {
	if strings.TrimSpace(path) != "" {
		c.Store.Path = path
	}
	if strings.TrimSpace(format) != "" {
		c.Store.Format = format
	}
	if err := c.normalizeStore(); err != nil {
		return err
	}
	return c.validateStore()
}
