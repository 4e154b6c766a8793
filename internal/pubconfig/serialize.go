package pubconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal renders the configuration as YAML. The output is stable: field
// order follows the struct definition and deserializing it reproduces an
// equal value.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling configuration: %w", err)
	}
	return data, nil
}

// LoadFromBytes parses a configuration from raw YAML bytes. Malformed
// input fails fast; it is never silently replaced with defaults.
func LoadFromBytes(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}

// LoadFromFile reads and parses a configuration file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading configuration file: %w", err)
	}
	cfg, err := LoadFromBytes(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
