package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable configuration of the louvain CLI.
type Config struct {
	MinModularityGrowth float64 `yaml:"min_modularity_growth" validate:"gte=0"`
	MaxLevels           int     `yaml:"max_levels" validate:"gte=0"`
	StreamBatchSize     int     `yaml:"stream_batch_size" validate:"gte=0"`
	LogLevel            string  `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
