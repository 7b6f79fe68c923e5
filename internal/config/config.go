// Package config handles run configuration loading and defaults.
package config

import (
	"os"

	"github.com/woozymasta/shp2geojson/internal/vector"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither a config file nor the command line sets a value.
const (
	DefaultInputDir  = "assets/shapefiles"
	DefaultOutputDir = "assets/geojsons"
	DefaultDriver    = vector.DriverGeoJSON
)

// Config represents a conversion run.
type Config struct {
	InputDir  string `yaml:"input,omitempty"`
	OutputDir string `yaml:"output,omitempty"`
	Driver    string `yaml:"driver,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputDir:  DefaultInputDir,
		OutputDir: DefaultOutputDir,
		Driver:    DefaultDriver,
	}
}

// Load reads the YAML configuration file and fills unset keys with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// explicit empty values in the file fall back too
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Driver == "" {
		cfg.Driver = DefaultDriver
	}

	return cfg, nil
}

// Override replaces values with the non-empty arguments, e.g. command line options.
func (c *Config) Override(input, output, driver string) {
	if input != "" {
		c.InputDir = input
	}
	if output != "" {
		c.OutputDir = output
	}
	if driver != "" {
		c.Driver = driver
	}
}
