// config.go - configuration management for the accumulator CLI
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the on-disk settings for a CLI session directory.
type Config struct {
	// File paths
	KeyPath         string `json:"key_path"`
	AccumulatorPath string `json:"accumulator_path"`
	PublicKeyPath   string `json:"public_key_path"`
	SessionPath     string `json:"session_path"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
	AuditLog string `json:"audit_log"`
}

// DefaultConfig returns the default configuration for a fresh working
// directory.
func DefaultConfig() *Config {
	return &Config{
		KeyPath:         "accumulator.key",
		AccumulatorPath: "accumulator.acc",
		PublicKeyPath:   "accumulator.pub",
		SessionPath:     "accumulator.session",
		LogLevel:        "info",
		LogFile:         "accumulator.log",
		AuditLog:        "",
	}
}

// LoadConfig loads configuration from configPath, creating and persisting a
// default one if it does not yet exist.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		var cfg Config
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		return &cfg, nil
	}

	cfg := DefaultConfig()
	if err := SaveConfig(cfg, configPath); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to configPath as indented JSON.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks that cfg names non-empty paths for every artifact the CLI
// reads or writes.
func (c *Config) Validate() error {
	if c.KeyPath == "" {
		return fmt.Errorf("key_path must not be empty")
	}
	if c.AccumulatorPath == "" {
		return fmt.Errorf("accumulator_path must not be empty")
	}
	if c.PublicKeyPath == "" {
		return fmt.Errorf("public_key_path must not be empty")
	}
	if c.SessionPath == "" {
		return fmt.Errorf("session_path must not be empty")
	}
	return nil
}
