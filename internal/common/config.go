package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for marketdeck
type Config struct {
	Environment string        `toml:"environment"`
	Backend     BackendConfig `toml:"backend"`
	Chart       ChartConfig   `toml:"chart"`
	Logging     LoggingConfig `toml:"logging"`
}

// BackendConfig holds dashboard backend API configuration
type BackendConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BackendConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ChartConfig holds price chart rendering configuration
type ChartConfig struct {
	OutputDir string `toml:"output_dir"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Backend: BackendConfig{
			BaseURL:   "http://localhost:5000",
			RateLimit: 10,
			Timeout:   "30s",
		},
		Chart: ChartConfig{
			OutputDir: "charts",
			Width:     900,
			Height:    400,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("MARKETDECK_ENV"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("MARKETDECK_BACKEND_URL"); url != "" {
		config.Backend.BaseURL = url
	}

	if rl := os.Getenv("MARKETDECK_BACKEND_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil {
			config.Backend.RateLimit = n
		}
	}

	if t := os.Getenv("MARKETDECK_BACKEND_TIMEOUT"); t != "" {
		config.Backend.Timeout = t
	}

	if dir := os.Getenv("MARKETDECK_CHART_DIR"); dir != "" {
		config.Chart.OutputDir = dir
	}

	if level := os.Getenv("MARKETDECK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
