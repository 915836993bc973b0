package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config is the optional YAML configuration for a demo run. Any field left
// at its zero value falls back to the corresponding flag default.
type config struct {
	Permits  int      `yaml:"permits"`
	PaceMs   int      `yaml:"pace_ms"`
	Keywords []string `yaml:"keywords"`
}

func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
