package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RestConfig is the configuration of the REST API server.
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	KeyGen   KeyGenSettings   `yaml:"keygen"`
}

// Validate checks the RestConfig and every nested settings block.
func (c *RestConfig) Validate() error {
	if err := validateStruct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.KeyGen.Validate()
}

// InitializeRestConfig reads and validates the YAML configuration at path.
// Unset key generation fields fall back to NewKeyGenSettings.
func InitializeRestConfig(path string) (*RestConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RestConfig{KeyGen: *NewKeyGenSettings()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
