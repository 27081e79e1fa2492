// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/household-tracker/internal/models"
	"fjacquet/household-tracker/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "HOUSEHOLD"

// appDirName is the per-user directory holding the config file and the data.
const appDirName = ".household-tracker"

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend       string `mapstructure:"backend" yaml:"backend"`
	Path          string `mapstructure:"path" yaml:"path"`
	RetryAttempts uint   `mapstructure:"retry_attempts" yaml:"retry_attempts"`
}

// ReportConfig holds the text report settings.
type ReportConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
}

// ExportConfig holds the export sink settings.
type ExportConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
}

// Overrides carries command-line values that take precedence over the
// config file and the environment. Empty fields are ignored.
type Overrides struct {
	LogLevel    string
	LogFormat   string
	Backend     string
	StoragePath string
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then HOUSEHOLD_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join("$HOME", appDirName))
	v.AddConfigPath(appDirName)
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Storage defaults
	v.SetDefault("storage.backend", models.StorageBackendJSON)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.retry_attempts", 3)

	// Report defaults
	v.SetDefault("report.currency_symbol", "₹")

	// Export defaults
	v.SetDefault("export.directory", ".")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidStorageBackend(config.Storage.Backend); err != nil {
		return err
	}

	if config.Storage.RetryAttempts < 1 || config.Storage.RetryAttempts > 20 {
		return fmt.Errorf("storage.retry_attempts must be between 1 and 20, got: %d", config.Storage.RetryAttempts)
	}

	if config.Export.Directory == "" {
		return fmt.Errorf("export.directory must not be empty")
	}

	return nil
}

// ApplyOverrides copies the non-empty override values into the config and
// validates the result.
func (c *Config) ApplyOverrides(o Overrides) error {
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Log.Format = o.LogFormat
	}
	if o.Backend != "" {
		c.Storage.Backend = o.Backend
	}
	if o.StoragePath != "" {
		c.Storage.Path = o.StoragePath
	}
	return validateConfig(c)
}

// StoragePath returns the configured data location, or the per-user default
// for the selected backend when none is set.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}

	name := "records.json"
	if c.Storage.Backend == models.StorageBackendSQLite {
		name = "records.db"
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(appDirName, name)
	}
	return filepath.Join(home, appDirName, name)
}
