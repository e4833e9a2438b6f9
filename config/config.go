// Package config loads the YAML configuration for the utilities and
// applies AMPLEC_* environment overrides on top of it.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/amplec/utils/logging"
)

// RawConfig holds the application configuration
type RawConfig struct {
	Logging RawLoggingConfig `yaml:"logging"`
	Store   RawStoreConfig   `yaml:"store"`
}

// RawLoggingConfig holds logging-related configuration
type RawLoggingConfig struct {
	Mode        string `yaml:"mode" env:"AMPLEC_LOG_MODE"`            // console, file, index or dual
	FilePath    string `yaml:"filePath" env:"AMPLEC_LOG_FILE"`        // path to the log file
	IndexURL    string `yaml:"indexUrl" env:"AMPLEC_INDEX_URL"`       // remote index endpoint
	IndexName   string `yaml:"indexName" env:"AMPLEC_INDEX_NAME"`     // index receiving log records
	IndexUser   string `yaml:"indexUser" env:"AMPLEC_INDEX_USER"`     // basic-auth user for the index
	APIKey      string `yaml:"apiKey" env:"AMPLEC_INDEX_API_KEY"`     // credential for the index
	ServiceName string `yaml:"serviceName" env:"AMPLEC_SERVICE_NAME"` // service tag on every record
}

// RawStoreConfig holds submission store configuration
type RawStoreConfig struct {
	BaseDir       string `yaml:"baseDir" env:"AMPLEC_STORE_DIR"`            // base directory for submissions
	RetentionDays int    `yaml:"retentionDays" env:"AMPLEC_RETENTION_DAYS"` // cleanup retention window
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *RawConfig {
	return &RawConfig{
		Logging: RawLoggingConfig{
			Mode:        "console",
			IndexName:   "amplec-logs",
			ServiceName: "amplec",
		},
		Store: RawStoreConfig{
			BaseDir:       "submissions",
			RetentionDays: 28,
		},
	}
}

// Load reads the configuration file at path (skipped when empty) and then
// applies environment overrides, so the environment always wins.
func Load(path string) (*RawConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment overrides: %w", err)
	}

	if cfg.Store.RetentionDays < 0 {
		return nil, fmt.Errorf("retentionDays must not be negative, got %d", cfg.Store.RetentionDays)
	}

	return cfg, nil
}

// LoggerConfig converts the raw logging section into a validated
// logging.Config.
func (c *RawConfig) LoggerConfig() (*logging.Config, error) {
	mode, err := logging.ParseMode(c.Logging.Mode)
	if err != nil {
		return nil, err
	}

	lc := &logging.Config{
		Mode:        mode,
		FilePath:    c.Logging.FilePath,
		IndexURL:    c.Logging.IndexURL,
		IndexName:   c.Logging.IndexName,
		IndexUser:   c.Logging.IndexUser,
		APIKey:      c.Logging.APIKey,
		ServiceName: c.Logging.ServiceName,
	}
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return lc, nil
}
