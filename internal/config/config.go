package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Store describes where the catalog is persisted.
type Store struct {
	Path string `toml:"path"`
	// Format selects the backend: "json", "yaml", or "sqlite". Empty infers
	// the backend from the path extension.
	Format string `toml:"format"`
	// BackupDir receives copies made by `shelf backup` when no destination is given.
	BackupDir string `toml:"backup_dir"`
}

// Session controls how the interactive menu treats the store.
type Session struct {
	SaveOnExit bool `toml:"save_on_exit"`
	// Autosave writes the store after every successful mutation in the menu.
	Autosave bool `toml:"autosave"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	Dir           string `toml:"dir"`
	RetentionDays int    `toml:"retention_days"`
}

// Config encapsulates all configuration values for shelf.
type Config struct {
	Store   Store   `toml:"store"`
	Session Session `toml:"session"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized. A missing file yields defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strictErr *toml.StrictMissingError
			if errors.As(err, &strictErr) {
				return nil, "", false, fmt.Errorf("parse config: %s", strings.TrimSpace(strictErr.String()))
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shelf.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the store and log directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Store.Path)}
	if c.Logging.Dir != "" {
		dirs = append(dirs, c.Logging.Dir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// StoreFormat returns the configured backend name, inferring it from the
// store path extension when unset.
func (c *Config) StoreFormat() string {
	if c.Store.Format != "" {
		return c.Store.Format
	}
	switch strings.ToLower(filepath.Ext(c.Store.Path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultDataDir() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "shelf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/shelf"
	}
	return filepath.Join(home, ".local", "share", "shelf")
}

// ErrConfigExists reports that WriteSample refused to replace a file.
var ErrConfigExists = errors.New("config file already exists")

// WriteSample writes the sample configuration to path. An existing file is
// only replaced when overwrite is set.
func WriteSample(path string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w at %s (use --overwrite to replace it)", ErrConfigExists, path)
		}
		return fmt.Errorf("write sample config: %w", err)
	}
	if _, err := file.WriteString(sampleConfig); err != nil {
		_ = file.Close()
		return fmt.Errorf("write sample config: %w", err)
	}
	return file.Close()
}
