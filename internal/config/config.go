// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"netsalary/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Calculation contains calculation defaults
	Calculation CalculationConfig `json:"calculation"`

	// Rules contains optional bracket table overrides
	Rules RulesConfig `json:"rules,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CalculationConfig contains calculation defaults
type CalculationConfig struct {
	// TaxPoints is the tax-point count applied when the caller supplies none
	TaxPoints float64 `json:"tax_points"`

	// PensionRate is the flat mandatory pension contribution rate
	PensionRate float64 `json:"pension_rate"`
}

// RulesConfig contains per-rule bracket table overrides.
// An empty slice leaves the built-in table in place.
type RulesConfig struct {
	IncomeTax         []BracketConfig `json:"income_tax,omitempty"`
	NationalInsurance []BracketConfig `json:"national_insurance,omitempty"`
	HealthInsurance   []BracketConfig `json:"health_insurance,omitempty"`
}

// BracketConfig is one progressive tier in a configured table
type BracketConfig struct {
	// UpperBound is the inclusive income ceiling for the tier (0 = unbounded)
	UpperBound float64 `json:"upper_bound"`

	// Rate is the deduction rate applied within the tier
	Rate float64 `json:"rate"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Calculation: CalculationConfig{
			TaxPoints:   2.25,
			PensionRate: 0.06,
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
