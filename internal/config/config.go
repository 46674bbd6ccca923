// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"oresweep/core/types"
	"oresweep/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Sweep contains the default sweep parameters
	Sweep types.SweepConfig `json:"sweep"`

	// Profiles contains sweep profile settings
	Profiles ProfilesConfig `json:"profiles"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ProfilesConfig contains sweep profile settings
type ProfilesConfig struct {
	// File is the path to the HCL profiles file
	File string `json:"file"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Directory is the default output directory; empty means prompt
	Directory string `json:"directory"`

	// NoColor disables colored terminal output
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	profilesFile := filepath.Join(homeDir, ".oresweep", "profiles.hcl")

	return &Config{
		Version: "1.0",
		Sweep:   types.DefaultSweepConfig(),
		Profiles: ProfilesConfig{
			File: profilesFile,
		},
		Output: OutputConfig{
			Directory: "",
			NoColor:   false,
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
	// Ensure directory exists
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
