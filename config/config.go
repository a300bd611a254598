package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Model holds the provider connection settings.
type Model struct {
	Provider string `yaml:"provider"`
	Name     string `yaml:"name"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

// Data holds the mock dataset settings.
type Data struct {
	File string `yaml:"file"`
}

// Limits bounds the engine and the interaction history.
type Limits struct {
	MaxIterations int `yaml:"max_iterations"`
	HistorySize   int `yaml:"history_size"`
}

// Log holds the logging settings.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Config is the root configuration document.
type Config struct {
	Model  Model  `yaml:"model"`
	Data   Data   `yaml:"data"`
	Limits Limits `yaml:"limits"`
	Log    Log    `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model: Model{
			Provider: "anthropic",
		},
		Data: Data{
			File: "data/exchange_mcp.json",
		},
		Limits: Limits{
			MaxIterations: 8,
			HistorySize:   200,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file when
// path is non-empty, then environment overrides. A missing file at an
// explicitly given path is an error; env overrides always apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers process environment overrides onto the configuration. The
// variable names mirror the backend's historical server environment.
func (c *Config) applyEnv() {
	setStr(&c.Model.Provider, "LLM_PROVIDER")
	setStr(&c.Model.Name, "LLM_MODEL")
	setStr(&c.Model.APIKey, "LLM_API_KEY")
	setStr(&c.Model.BaseURL, "LLM_BASE_URL")
	setStr(&c.Data.File, "DATA_FILE")
	setStr(&c.Log.Level, "LOG_LEVEL")
	setStr(&c.Log.Format, "LOG_FORMAT")
	setInt(&c.Limits.MaxIterations, "MAX_ITERATIONS")
	setInt(&c.Limits.HistorySize, "HISTORY_SIZE")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}
