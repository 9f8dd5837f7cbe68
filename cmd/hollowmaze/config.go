package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config collects the run parameters resolved from defaults, the optional
// YAML file, environment variables, and flags — in that order, later wins.
type Config struct {
	Capacity           int64 `yaml:"capacity"`
	Seed               int64 `yaml:"seed"`
	TreasuresPerHollow int   `yaml:"treasures_per_hollow"`
	MinWeight          int64 `yaml:"min_weight"`
	MaxWeight          int64 `yaml:"max_weight"`
	MinValue           int64 `yaml:"min_value"`
	MaxValue           int64 `yaml:"max_value"`
}

// defaultConfig mirrors the library defaults so a bare run works.
func defaultConfig() Config {
	return Config{
		Capacity:           20,
		Seed:               0,
		TreasuresPerHollow: 5,
		MinWeight:          1,
		MaxWeight:          20,
		MinValue:           1,
		MaxValue:           100,
	}
}

// loadYAML overlays cfg with values from the YAML file at path.
func loadYAML(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays cfg with HOLLOWMAZE_* environment variables, typically
// sourced from a .env file. Unset or malformed variables are skipped.
func applyEnv(cfg *Config) {
	envInt64 := func(key string, dst *int64) {
		if raw, ok := os.LookupEnv(key); ok {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
				*dst = v
			}
		}
	}
	envInt64("HOLLOWMAZE_CAPACITY", &cfg.Capacity)
	envInt64("HOLLOWMAZE_SEED", &cfg.Seed)
	envInt64("HOLLOWMAZE_MIN_WEIGHT", &cfg.MinWeight)
	envInt64("HOLLOWMAZE_MAX_WEIGHT", &cfg.MaxWeight)
	envInt64("HOLLOWMAZE_MIN_VALUE", &cfg.MinValue)
	envInt64("HOLLOWMAZE_MAX_VALUE", &cfg.MaxValue)

	if raw, ok := os.LookupEnv("HOLLOWMAZE_TREASURES_PER_HOLLOW"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			cfg.TreasuresPerHollow = v
		}
	}
}
