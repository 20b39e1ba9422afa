package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".pickex"
	fileName = "config.yaml"
)

// Config holds settings for a pickex run
type Config struct {
	DoneDir     string `yaml:"done_dir"`
	Seed        uint64 `yaml:"seed"`
	LogLevel    string `yaml:"log_level"`
	CatalogFile string `yaml:"catalog_file,omitempty"` // empty uses the built-in catalog
}

// DefaultConfig returns the defaults used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		DoneDir:  "./problems",
		Seed:     42,
		LogLevel: "warn",
	}
}

// Dir returns the path to ~/.pickex
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the path to ~/.pickex/config.yaml
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads configuration from path.
// An empty path means ~/.pickex/config.yaml, which may be absent.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configured values
func (c *Config) Validate() error {
	if c.DoneDir == "" {
		return errors.New("done_dir must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
