// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"kitcheck/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Rules contains compatibility rule settings
	Rules RulesConfig `json:"rules"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// RulesConfig contains compatibility rule settings
type RulesConfig struct {
	// PowerMarginWatts is the headroom added to combined TDP
	// when checking PSU sufficiency
	PowerMarginWatts int64 `json:"power_margin_watts"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails includes per-kit verdicts in the output
	ShowDetails bool `json:"show_details"`
}

// DefaultPowerMargin is the PSU headroom in watts
const DefaultPowerMargin = 50

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Rules: RulesConfig{
			PowerMarginWatts: DefaultPowerMargin,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ShowDetails:   false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
