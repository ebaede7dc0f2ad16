package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrainConfig is the YAML-loaded configuration for the train subcommand.
// CLI flags, when set, override the corresponding field after load.
type TrainConfig struct {
	Episodes    int     `yaml:"episodes"`
	Alpha       float32 `yaml:"alpha"`
	Seed        uint64  `yaml:"seed"`
	LoadPath    string  `yaml:"load"`
	SavePath    string  `yaml:"save"`
	MetricsDir  string  `yaml:"metrics_dir"`
	StatusAddr  string  `yaml:"status_addr"`
	MetricsAddr string  `yaml:"metrics_addr"`
}

func loadTrainConfig(path string) (TrainConfig, error) {
	cfg := TrainConfig{Episodes: 1000, Alpha: 0.1, MetricsDir: "metrics"}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("fib2048: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("fib2048: parse config %s: %w", path, err)
	}
	return cfg, nil
}
