// Package config loads service configuration. Missing files are fine:
// every field has a default, and a yaml file only overrides what it
// names. Secrets (API keys, DATABASE_URL) stay in the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const DefaultPath = "config/service.yaml"

type ServerConfig struct {
	Port int `yaml:"port"`
}

type OptimizerConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

type AdvisorConfig struct {
	ActiveProvider string `yaml:"active_provider"`
	Model          string `yaml:"model"`
}

type StoreConfig struct {
	CacheDir string `yaml:"cache_dir"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Advisor   AdvisorConfig   `yaml:"advisor"`
	Store     StoreConfig     `yaml:"store"`
}

func Default() Config {
	return Config{
		Server:    ServerConfig{Port: 8080},
		Optimizer: OptimizerConfig{Tolerance: 1000.0, MaxIterations: 100},
		Advisor:   AdvisorConfig{ActiveProvider: "gemini"},
		Store:     StoreConfig{CacheDir: ""},
	}
}

// Load reads the yaml file at path over the defaults. The PORT
// environment variable, when set, wins over both.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[WARNING] Failed to parse %s: %v\n", path, err)
			cfg = Default()
		}
	}

	if p := os.Getenv("PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}

	return cfg
}
