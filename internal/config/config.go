// Package config loads application configuration from an optional YAML file
// and environment variables. Environment variables override YAML values.
package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for clinicadesk.
type Config struct {
	// DatabasePath is the location of the SQLite database file. If empty,
	// it defaults to clinica-dados.db in the user's documents folder.
	DatabasePath string `yaml:"database_path" env:"CLINICADESK_DB_PATH" env-default:""`

	// Log configuration
	Log LogConfig `yaml:"log"`

	// Export configuration
	Export ExportConfig `yaml:"export"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"CLINICADESK_LOG_LEVEL" env-default:"info"`
	// Format is "console" or "json".
	Format string `yaml:"format" env:"CLINICADESK_LOG_FORMAT" env-default:"console"`
}

// ExportConfig holds backup export configuration.
type ExportConfig struct {
	// Formats selects the backup artifacts to produce: "csv", "xlsx",
	// or "csv,xlsx".
	Formats string `yaml:"formats" env:"CLINICADESK_EXPORT_FORMATS" env-default:"csv"`
}

// Load reads configuration from the given YAML file (if it exists) and the
// environment. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, err
			}
			return applyDefaults(&cfg)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return applyDefaults(&cfg)
}

func applyDefaults(cfg *Config) (*Config, error) {
	if cfg.DatabasePath == "" {
		path, err := DefaultDatabasePath()
		if err != nil {
			return nil, err
		}
		cfg.DatabasePath = path
	}
	return cfg, nil
}

// DefaultDatabasePath returns the per-user documents location of the
// database file, creating the directory if needed.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, "Documents")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "clinica-dados.db"), nil
}
