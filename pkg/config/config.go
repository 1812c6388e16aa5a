// Package config provides configuration loading and management for semio.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Output parameters
	Output struct {
		// Grouped selects the curated grouped parameter view instead of
		// the full per-line mapping
		Grouped bool `yaml:"grouped"`

		// Quiet suppresses the console parameter listing
		Quiet bool `yaml:"quiet"`

		// Format is the structured dump encoding: "json" or "yaml"
		Format string `yaml:"format"`

		// DumpDir is where per-image dump files are written; empty means
		// next to each source image
		DumpDir string `yaml:"dumpDir"`
	} `yaml:"output"`

	// Batch parameters
	Batch struct {
		// Stats enables the pixel-size summary across a processed folder
		Stats bool `yaml:"stats"`
	} `yaml:"batch"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default output parameters
	cfg.Output.Grouped = true
	cfg.Output.Quiet = false
	cfg.Output.Format = "json"
	cfg.Output.DumpDir = ""

	// Set default batch parameters
	cfg.Batch.Stats = false

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
