package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// demoConfig tunes the bundled demos. All fields are optional.
type demoConfig struct {
	// Count seeds the counter demo's model.
	Count int `yaml:"count"`

	// TickInterval drives the clock demo (default 1s).
	TickInterval time.Duration `yaml:"tick_interval"`

	// Milestone is the tick multiple that triggers the clock demo's
	// chime effect (default 10).
	Milestone int `yaml:"milestone"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		TickInterval: time.Second,
		Milestone:    10,
	}
}

// loadDemoConfig reads the YAML config at path, or returns defaults when
// path is empty.
func loadDemoConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.Milestone <= 0 {
		cfg.Milestone = 10
	}
	return cfg, nil
}
