package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration
type Config struct {
	Service ServiceConfig `json:"service" yaml:"service"`
	Parse   ParseConfig   `json:"parse" yaml:"parse"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}

// ServiceConfig contains Flex Web Service access parameters
type ServiceConfig struct {
	Token        string `json:"token" yaml:"token"`
	QueryID      string `json:"query_id" yaml:"query_id"`
	BaseURL      string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	PollInterval string `json:"poll_interval,omitempty" yaml:"poll_interval,omitempty"` // e.g., "5s"
	MaxPolls     int    `json:"max_polls,omitempty" yaml:"max_polls,omitempty"`
}

// ParsePollInterval converts the poll interval string to time.Duration
func (s ServiceConfig) ParsePollInterval() (time.Duration, error) {
	if s.PollInterval == "" {
		return 0, nil
	}
	return time.ParseDuration(s.PollInterval)
}

// ParseConfig contains statement parsing parameters
type ParseConfig struct {
	DateMode   string `json:"date_mode,omitempty" yaml:"date_mode,omitempty"` // "auto", "iso", "us" or "european"
	Separator  string `json:"separator,omitempty" yaml:"separator,omitempty"`
	Strict     bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
	Permissive bool   `json:"permissive,omitempty" yaml:"permissive,omitempty"`
	TrimSpace  bool   `json:"trim_space,omitempty" yaml:"trim_space,omitempty"`
}

// ArchiveConfig contains statement archive parameters
type ArchiveConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Parse.DateMode {
	case "", "auto", "iso", "us", "european":
	default:
		return fmt.Errorf("parse.date_mode must be 'auto', 'iso', 'us' or 'european'")
	}
	switch c.Parse.Separator {
	case "", ";", ",", " ", "T":
	default:
		return fmt.Errorf("parse.separator must be one of ';', ',', ' ' or 'T'")
	}
	if c.Service.PollInterval != "" {
		if _, err := time.ParseDuration(c.Service.PollInterval); err != nil {
			return fmt.Errorf("service.poll_interval: %w", err)
		}
	}
	if c.Service.MaxPolls < 0 {
		return fmt.Errorf("service.max_polls must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			DateMode: "auto",
		},
		Archive: ArchiveConfig{
			DBPath: "./statements.db",
		},
	}
}
