// Package config loads application configuration from defaults, an
// optional config file in the data directory, and RECIPEBOX_-prefixed
// environment variables (highest precedence).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// DataDir is where the database and config file live.
	DataDir string `mapstructure:"data_dir"`

	// DatabaseFile is the store filename inside DataDir.
	DatabaseFile string `mapstructure:"database_file"`

	// KeyringService names the credential-manager entry that holds the
	// session token.
	KeyringService string `mapstructure:"keyring_service"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// DatabasePath returns the absolute path of the store file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// Load creates a new Config instance with values from defaults, the
// optional config file, and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("database_file", "recipebox.db")
	v.SetDefault("keyring_service", "com.recipebox.auth")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("RECIPEBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString("data_dir"))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if cfg.DatabaseFile == "" {
		return fmt.Errorf("database_file must not be empty")
	}
	if cfg.KeyringService == "" {
		return fmt.Errorf("keyring_service must not be empty")
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("unknown log_level: %s", cfg.LogLevel)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".recipebox")
}
