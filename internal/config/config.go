// Package config loads the server's YAML configuration file and applies
// environment-variable overrides for values that shouldn't live in a
// checked-in file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full set of settings for cmd/server.
type Config struct {
	Server struct {
		ListenAddr    string `yaml:"listen_addr"`
		CommandBuffer int    `yaml:"command_buffer"`
	} `yaml:"server"`

	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`

	Logging struct {
		Level   string `yaml:"level"`
		LogFile string `yaml:"log_file"`
	} `yaml:"logging"`
}

// Load reads path, unmarshals it as YAML, applies environment overrides,
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the fields Load cannot safely default.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	if !strings.HasPrefix(c.Server.ListenAddr, ":") && !strings.Contains(c.Server.ListenAddr, ":") {
		return fmt.Errorf("server.listen_addr must be host:port or :port, got %q", c.Server.ListenAddr)
	}
	if c.Server.CommandBuffer <= 0 {
		return fmt.Errorf("server.command_buffer must be positive")
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	return nil
}

// overrideWithEnv lets deploys inject secrets and per-environment values
// without editing the checked-in YAML.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("COMMAND_BUFFER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.CommandBuffer = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
