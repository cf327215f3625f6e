package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/fitkit/roundclock/internal/roundtimer"
)

// Config holds the daemon configuration
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Timer roundtimer.Config `yaml:"timer"`
	Log   struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// defaultConfig returns the built-in defaults: eight one-minute rounds
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Timer = roundtimer.Config{RoundDurationSec: 60, RoundCount: 8}
	cfg.Log.Level = "info"
	return cfg
}

// loadConfig reads the yaml config file (when path is non-empty) and applies
// environment overrides on top.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.Server.Addr = getEnv("ROUNDCLOCK_ADDR", cfg.Server.Addr)
	cfg.Timer.RoundDurationSec = getEnvAsInt("ROUNDCLOCK_ROUND_DURATION_SEC", cfg.Timer.RoundDurationSec)
	cfg.Timer.RoundCount = getEnvAsInt("ROUNDCLOCK_ROUND_COUNT", cfg.Timer.RoundCount)
	cfg.Log.Level = getEnv("ROUNDCLOCK_LOG_LEVEL", cfg.Log.Level)

	if err := cfg.Timer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timer settings: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
