// Package config defines program configuration and prepares logging from it.
package config

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	Version int           `yaml:"version"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns configuration used when no file is provided: normal console
// logging, no file logging.
func Default() *Config {
	return &Config{
		Version: 1,
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "append"},
		},
	}
}

// Load reads configuration from a YAML file, overlaying defaults. Empty path
// means defaults only. Unknown fields are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration '%s': %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration '%s': %w", path, err)
	}
	if err := cfg.Logging.validate(); err != nil {
		return nil, fmt.Errorf("bad configuration '%s': %w", path, err)
	}
	return cfg, nil
}

// Dump serializes active configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
