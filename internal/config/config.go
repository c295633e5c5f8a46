package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the user's defaults for remapping sessions.
type Config struct {
	// Prefix replace defaults, matching the editor's initial field values
	OriginalRoot string `json:"original_root"`
	NewRoot      string `json:"new_root"`

	// Operation log settings
	EnableLogging    bool `json:"enable_logging"`
	LogRetentionDays int  `json:"log_retention_days"`

	// Path table output
	PathColumnWidth int  `json:"path_column_width"`
	DisableColor    bool `json:"disable_color"`

	// Restore already rewritten clips when a later clip fails to save
	Transactional bool `json:"transactional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OriginalRoot:     "Root",
		NewRoot:          "SomeNewObjectHere/Root",
		EnableLogging:    true,
		LogRetentionDays: 30,
		PathColumnWidth:  48,
		DisableColor:     false,
		Transactional:    false,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".anim-tidy", "config.json"), nil
}

// Load reads the configuration from the default location
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in any missing fields with defaults
	defaults := DefaultConfig()
	if cfg.OriginalRoot == "" {
		cfg.OriginalRoot = defaults.OriginalRoot
	}
	if cfg.NewRoot == "" {
		cfg.NewRoot = defaults.NewRoot
	}
	if cfg.LogRetentionDays == 0 {
		cfg.LogRetentionDays = defaults.LogRetentionDays
	}
	if cfg.PathColumnWidth == 0 {
		cfg.PathColumnWidth = defaults.PathColumnWidth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot be used
func (cfg *Config) Validate() error {
	if cfg.LogRetentionDays < 0 {
		return fmt.Errorf("log_retention_days must not be negative, got %d", cfg.LogRetentionDays)
	}
	if cfg.PathColumnWidth < 8 {
		return fmt.Errorf("path_column_width must be at least 8, got %d", cfg.PathColumnWidth)
	}
	return nil
}

// Save writes the configuration to the default location
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return cfg.SaveTo(path)
}

// SaveTo writes the configuration to path
func (cfg *Config) SaveTo(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
