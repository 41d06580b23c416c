// Package config loads the backend configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/mkuiper/kraamlog/internal/errors"
)

// Config is the backend configuration.
type Config struct {
	// DataDir holds the SQLite database. Empty means no durable medium:
	// the backend runs with in-memory degradation.
	DataDir  string `yaml:"data_dir"`
	Listen   string `yaml:"listen"`
	LogLevel string `yaml:"log_level"`
	Mirror   Mirror `yaml:"mirror"`
}

// Mirror configures the optional remote document mirror. Both values
// must be present for the mirror to activate.
type Mirror struct {
	ServiceURL string `yaml:"service_url"`
	APIKey     string `yaml:"api_key"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:  "./data",
		Listen:   "127.0.0.1:8090",
		LogLevel: "INFO",
	}
}

// Load reads the configuration file at path and applies environment
// overrides. An empty path skips the file and uses defaults plus
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, apperrors.Wrap(apperrors.ErrConfigInvalid,
				fmt.Sprintf("cannot read config file %s", path), err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, apperrors.Wrap(apperrors.ErrConfigInvalid,
				fmt.Sprintf("cannot parse config file %s", path), err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides file values with KRAAMLOG_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("KRAAMLOG_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("KRAAMLOG_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("KRAAMLOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KRAAMLOG_MIRROR_URL"); v != "" {
		cfg.Mirror.ServiceURL = v
	}
	if v := os.Getenv("KRAAMLOG_MIRROR_KEY"); v != "" {
		cfg.Mirror.APIKey = v
	}
}
