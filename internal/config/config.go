// Package config provides configuration management for the news ingestion pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names understood by the pipeline.
const (
	ProviderNewsAPI = "newsapi"
	ProviderGNews   = "gnews"
)

// Configuration validation errors.
var (
	ErrNoProviders         = errors.New("at least one provider is required")
	ErrUnknownProvider     = errors.New("provider name must be 'newsapi' or 'gnews'")
	ErrDuplicateProvider   = errors.New("provider configured more than once")
	ErrNoEnabledProviders  = errors.New("at least one provider must be enabled")
	ErrMissingDatabasePath = errors.New("pipeline.database_path is required")
	ErrInvalidLimit        = errors.New("fetch.limit must be at least 1")
	ErrInvalidTimeout      = errors.New("fetch.timeout_sec must be at least 1")
	ErrInvalidRate         = errors.New("fetch.requests_per_sec must be positive")
	ErrInvalidInterval     = errors.New("refresh.interval_sec must be at least 1")
	ErrInvalidPoll         = errors.New("refresh.poll_sec must be at least 1")
	ErrPollExceedsInterval = errors.New("refresh.poll_sec cannot exceed refresh.interval_sec")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
	ErrInvalidRetention    = errors.New("retention.max_age_days must be at least 1 when retention is enabled")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// PipelineConfig contains ingestion pipeline settings.
type PipelineConfig struct {
	DatabasePath string           `yaml:"database_path"`
	SentryDSN    string           `yaml:"sentry_dsn"`
	Providers    []ProviderConfig `yaml:"providers"`
	Fetch        FetchConfig      `yaml:"fetch"`
	Refresh      RefreshConfig    `yaml:"refresh"`
	Logging      LoggingConfig    `yaml:"logging"`
	Retention    RetentionConfig  `yaml:"retention"`
}

// ProviderConfig represents one external news provider.
type ProviderConfig struct {
	Name      string `yaml:"name"`
	APIKeyEnv string `yaml:"api_key_env"`
	Enabled   bool   `yaml:"enabled"`
}

// APIKey resolves the provider credential from the environment.
// An empty result selects mock mode for the whole run.
func (p *ProviderConfig) APIKey() string {
	if p.APIKeyEnv == "" {
		return ""
	}

	return os.Getenv(p.APIKeyEnv)
}

// FetchConfig defines outbound HTTP behavior.
type FetchConfig struct {
	Limit          int     `yaml:"limit"`
	TimeoutSec     int     `yaml:"timeout_sec"`
	RequestsPerSec float64 `yaml:"requests_per_sec"`
}

// GetTimeout returns the per-request timeout duration.
func (f *FetchConfig) GetTimeout() time.Duration {
	return time.Duration(f.TimeoutSec) * time.Second
}

// RefreshConfig defines the background refresh loop behavior.
type RefreshConfig struct {
	IntervalSec int `yaml:"interval_sec"`
	PollSec     int `yaml:"poll_sec"`
}

// GetInterval returns the minimum time between scheduled runs.
func (r *RefreshConfig) GetInterval() time.Duration {
	return time.Duration(r.IntervalSec) * time.Second
}

// GetPoll returns the scheduler poll quantum.
func (r *RefreshConfig) GetPoll() time.Duration {
	return time.Duration(r.PollSec) * time.Second
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RetentionConfig controls optional cleanup of old articles. Disabled by
// default: ingestion is insert-only and nothing is removed unless asked.
type RetentionConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxAgeDays int  `yaml:"max_age_days"`
}

// Default returns a configuration with working defaults so the pipeline
// can run without a config file.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			DatabasePath: "newswire.db",
			Providers: []ProviderConfig{
				{Name: ProviderNewsAPI, APIKeyEnv: "NEWS_API_KEY", Enabled: true},
				{Name: ProviderGNews, APIKeyEnv: "GNEWS_API_KEY", Enabled: true},
			},
			Fetch: FetchConfig{
				Limit:          10,
				TimeoutSec:     10,
				RequestsPerSec: 2,
			},
			Refresh: RefreshConfig{
				IntervalSec: 3600,
				PollSec:     60,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "text",
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.DatabasePath == "" {
		return ErrMissingDatabasePath
	}

	if len(c.Pipeline.Providers) == 0 {
		return ErrNoProviders
	}

	seen := make(map[string]bool)
	enabledCount := 0

	for i, p := range c.Pipeline.Providers {
		if p.Name != ProviderNewsAPI && p.Name != ProviderGNews {
			return fmt.Errorf("%w: provider[%d] %q", ErrUnknownProvider, i, p.Name)
		}

		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateProvider, p.Name)
		}
		seen[p.Name] = true

		if p.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledProviders
	}

	if c.Pipeline.Fetch.Limit < 1 {
		return ErrInvalidLimit
	}

	if c.Pipeline.Fetch.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Pipeline.Fetch.RequestsPerSec <= 0 {
		return ErrInvalidRate
	}

	if c.Pipeline.Refresh.IntervalSec < 1 {
		return ErrInvalidInterval
	}

	if c.Pipeline.Refresh.PollSec < 1 {
		return ErrInvalidPoll
	}

	if c.Pipeline.Refresh.PollSec > c.Pipeline.Refresh.IntervalSec {
		return ErrPollExceedsInterval
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Pipeline.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Pipeline.Logging.Format != "text" && c.Pipeline.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	if c.Pipeline.Retention.Enabled && c.Pipeline.Retention.MaxAgeDays < 1 {
		return ErrInvalidRetention
	}

	return nil
}

// EnabledProviders returns only enabled providers.
func (c *Config) EnabledProviders() []ProviderConfig {
	var enabled []ProviderConfig

	for _, p := range c.Pipeline.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}

	return enabled
}

// DSN returns the Sentry DSN, falling back to the SENTRY_DSN environment
// variable when the config file does not set one.
func (c *Config) DSN() string {
	if c.Pipeline.SentryDSN != "" {
		return c.Pipeline.SentryDSN
	}

	return os.Getenv("SENTRY_DSN")
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Providers: %d, Limit: %d, Database: %s}",
		len(c.Pipeline.Providers),
		c.Pipeline.Fetch.Limit,
		c.Pipeline.DatabasePath,
	)
}
