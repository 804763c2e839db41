// Package config loads the assetline.yaml workspace configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/assetline-dev/assetline/internal/accounts"
)

// FileName is the workspace config file name.
const FileName = "assetline.yaml"

// Config represents the top-level assetline.yaml configuration.
type Config struct {
	Business   BusinessConfig   `yaml:"business"`
	Store      StoreConfig      `yaml:"store"`
	Accounts   accounts.Codes   `yaml:"accounts"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name   string `yaml:"name"`
	Entity string `yaml:"entity,omitempty"`
}

// StoreConfig selects the document store backing the workspace.
type StoreConfig struct {
	// Backend is "memory" or "sqlite".
	Backend string `yaml:"backend"`
	// Path is the sqlite database path, relative to the workspace.
	Path string `yaml:"path,omitempty"`
}

// ThresholdsConfig holds validation tolerances.
type ThresholdsConfig struct {
	// BalanceEpsilon is the tolerated accrual balance mismatch before a
	// warning is raised.
	BalanceEpsilon float64 `yaml:"balance_epsilon"`
}

// Load reads an assetline.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "assetline.db",
		},
		Accounts: accounts.DefaultCodes(),
		Thresholds: ThresholdsConfig{
			BalanceEpsilon: 0.01,
		},
	}
}
