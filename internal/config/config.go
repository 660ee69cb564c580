// Package config loads application configuration from an optional YAML file
// and PULSE_-prefixed environment variables, environment taking precedence.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"` // console, file or both
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig holds filesystem locations for generated and exported data.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/pulse.log",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "data/reports",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file if present,
// then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	path := configFilePath()
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("PULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// configFilePath returns the YAML config location, overridable via
// PULSE_CONFIG.
func configFilePath() string {
	if p := os.Getenv("PULSE_CONFIG"); p != "" {
		return p
	}
	return "pulse.yml"
}
