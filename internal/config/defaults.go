package config

import "path/filepath"

const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

const (
	defaultConfigPath       = "~/.config/shelf/config.toml"
	defaultStoreFile        = "library.json"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultSaveOnExit       = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	dataDir := defaultDataDir()
	return Config{
		Store: Store{
			Path:      filepath.Join(dataDir, defaultStoreFile),
			BackupDir: filepath.Join(dataDir, "backups"),
		},
		Session: Session{
			SaveOnExit: defaultSaveOnExit,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			Dir:           filepath.Join(dataDir, "logs"),
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
