package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath          = "configs/dupcheck.yaml"
	defaultAPIPort       = "18082"
	defaultStreamName    = "dupcheck-events"
	defaultStreamGroup   = "dupcheck-group"
	defaultResultsStream = "dupcheck-results"
	defaultMaxValues     = 100000
)

// LoadServiceConfig reads the file named by DUPCHECK_CONFIG_PATH, or
// DefaultPath when unset. A missing DefaultPath yields Default(); a missing
// explicit path is an error.
func LoadServiceConfig() (*ServiceConfig, error) {
	path := os.Getenv("DUPCHECK_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg ServiceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when DefaultPath does not exist
func Default() *ServiceConfig {
	var cfg ServiceConfig
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *ServiceConfig) {
	if cfg.API.Port == "" {
		cfg.API.Port = defaultAPIPort
	}
	if cfg.Stream.Name == "" {
		cfg.Stream.Name = defaultStreamName
	}
	if cfg.Stream.Group == "" {
		cfg.Stream.Group = defaultStreamGroup
	}
	if cfg.Stream.Results == "" {
		cfg.Stream.Results = defaultResultsStream
	}
	if cfg.Limits.MaxValues == 0 {
		cfg.Limits.MaxValues = defaultMaxValues
	}
}

func (c *ServiceConfig) Validate() error {
	if c.Limits.MaxValues < 0 {
		return fmt.Errorf("invalid config: negative max_values %d", c.Limits.MaxValues)
	}

	if c.Stream.Name == c.Stream.Results {
		return errors.New("invalid config: stream name and results stream must differ")
	}

	return nil
}
