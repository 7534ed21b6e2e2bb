package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"shelf/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Store.Path = filepath.Join(base, "data", "library.json")
	cfgVal.Store.BackupDir = filepath.Join(base, "backups")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStoreFile points the store at name inside the temp data directory. The
// extension picks the backend.
func WithStoreFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Store.Path = filepath.Join(b.baseDir, "data", name)
	}
}

// WithAutosave toggles menu autosave.
func WithAutosave(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.Autosave = enabled
	}
}

// WithSaveOnExit toggles saving when the menu exits.
func WithSaveOnExit(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.SaveOnExit = enabled
	}
}

// WriteConfigFile writes cfg as TOML into the temp dir and returns its path so
// CLI tests can pass it via --config.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(BaseDir(cfg), "shelf.toml")
	data, err := encodeTOML(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Store.Path))
}
