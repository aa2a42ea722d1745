// Package config loads tool configuration from a YAML file with environment
// overrides. The tool must run with zero setup, so a missing config file is
// fine: defaults apply and env vars can still override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch   FetchConfig   `yaml:"fetch"`
	Data    DataConfig    `yaml:"data"`
	History HistoryConfig `yaml:"history"`
}

type FetchConfig struct {
	Retries      int    `yaml:"retries"`
	TimeoutMS    int    `yaml:"timeout_ms"`
	RetryDelayMS int    `yaml:"retry_delay_ms"`
	UserAgent    string `yaml:"user_agent"`
}

type DataConfig struct {
	Workouts string `yaml:"workouts"`
	Videos   string `yaml:"videos"`
}

type HistoryConfig struct {
	Path string `yaml:"path"`
}

// Timeout returns the per-attempt fetch deadline.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutMS) * time.Millisecond
}

// RetryDelay returns the backoff base between fetch attempts.
func (f FetchConfig) RetryDelay() time.Duration {
	return time.Duration(f.RetryDelayMS) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			Retries:      3,
			TimeoutMS:    30000,
			RetryDelayMS: 1000,
			UserAgent:    "cycling-validate-data/1.0",
		},
		Data: DataConfig{
			Workouts: "workouts.json",
			Videos:   "videos.json",
		},
		History: HistoryConfig{
			Path: "validate-history.db",
		},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error. Env vars use the prefix
// CYCLING_ and underscore-separated paths:
//
//	CYCLING_FETCH_RETRIES, CYCLING_FETCH_TIMEOUT_MS,
//	CYCLING_FETCH_RETRY_DELAY_MS, CYCLING_FETCH_USER_AGENT,
//	CYCLING_DATA_WORKOUTS, CYCLING_DATA_VIDEOS, CYCLING_HISTORY_PATH
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CYCLING_FETCH_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.Retries = n
		}
	}
	if v := os.Getenv("CYCLING_FETCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.TimeoutMS = n
		}
	}
	if v := os.Getenv("CYCLING_FETCH_RETRY_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.RetryDelayMS = n
		}
	}
	if v := os.Getenv("CYCLING_FETCH_USER_AGENT"); v != "" {
		cfg.Fetch.UserAgent = v
	}
	if v := os.Getenv("CYCLING_DATA_WORKOUTS"); v != "" {
		cfg.Data.Workouts = v
	}
	if v := os.Getenv("CYCLING_DATA_VIDEOS"); v != "" {
		cfg.Data.Videos = v
	}
	if v := os.Getenv("CYCLING_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
}

func (c *Config) validate() error {
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative")
	}
	if c.Fetch.TimeoutMS <= 0 {
		return fmt.Errorf("fetch.timeout_ms must be positive")
	}
	if c.Fetch.RetryDelayMS < 0 {
		return fmt.Errorf("fetch.retry_delay_ms must not be negative")
	}
	if c.Fetch.UserAgent == "" {
		return fmt.Errorf("fetch.user_agent is required")
	}
	if c.Data.Workouts == "" {
		return fmt.Errorf("data.workouts is required")
	}
	if c.Data.Videos == "" {
		return fmt.Errorf("data.videos is required")
	}
	return nil
}
