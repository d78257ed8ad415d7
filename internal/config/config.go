// Package config loads and saves the server configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage backend names accepted in the config file.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// FileName is the config file name inside the data directory.
const FileName = "medfleet.json"

// Config represents the flat medfleet configuration.
type Config struct {
	Version string `json:"version"`
	Listen  string `json:"listen"`   // host:port the HTTP server binds to
	DataDir string `json:"data_dir"` // directory holding the database or JSON files
	Backend string `json:"backend"`  // "sqlite" or "json"
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Listen:  ":8080",
		DataDir: "data",
		Backend: BackendSQLite,
	}
}

// Load reads config.json from the specified directory. A missing file
// yields the defaults; a malformed file is an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Backend != BackendSQLite && cfg.Backend != BackendJSON {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	return cfg, nil
}

// Save writes config.json to the directory, creating it if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
