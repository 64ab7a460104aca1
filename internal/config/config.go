// Package config loads and validates the application's YAML
// configuration: feed shape, page cache, and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/scrollfeed/scrollfeed/internal/feed"
	"github.com/scrollfeed/scrollfeed/internal/feed/cache"
	"github.com/scrollfeed/scrollfeed/internal/logging"
)

// Schema versioning. The version field in config files is checked
// against SupportedConstraint so a future breaking schema can be
// detected instead of silently misread.
const (
	// CurrentVersion is the schema version written by `config init`.
	CurrentVersion = "1.0.0"

	// SupportedConstraint is the semver range this binary can read.
	SupportedConstraint = ">= 1.0.0, < 2.0.0"
)

// Defaults for the feed section.
const (
	// DefaultPrefetchThreshold is the scroll lookahead, in items, that
	// triggers the next page fetch.
	DefaultPrefetchThreshold = 5

	// DefaultLatencyMS is the simulated per-fetch latency of the demo
	// source, in milliseconds.
	DefaultLatencyMS = 750
)

// Environment overrides.
const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "SCROLLFEED_CONFIG"

	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "SCROLLFEED_LOG_LEVEL"
)

// configDirName is the per-user directory holding config and cache.
const configDirName = ".scrollfeed"

// Validation errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config schema version")
	ErrInvalidVersion     = errors.New("invalid config schema version")
	ErrInvalidTotalItems  = errors.New("feed.total_items cannot be negative")
	ErrInvalidPageSize    = errors.New("feed.page_size must be >= 1")
	ErrInvalidThreshold   = errors.New("feed.prefetch_threshold cannot be negative")
	ErrInvalidLatency     = errors.New("feed.latency_ms cannot be negative")
)

// Config is the root configuration document.
type Config struct {
	Version string        `yaml:"version"`
	Feed    FeedConfig    `yaml:"feed"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// FeedConfig shapes the demo feed and the loader's trigger protocol.
type FeedConfig struct {
	// TotalItems is the size of the demo backing source.
	TotalItems int `yaml:"total_items"`

	// PageSize is the fixed fetch unit partitioning the source.
	PageSize int `yaml:"page_size"`

	// PrefetchThreshold is the scroll-proximity-to-end distance, in
	// items, that triggers the next page fetch.
	PrefetchThreshold int `yaml:"prefetch_threshold"`

	// LatencyMS is the simulated per-fetch latency in milliseconds.
	LatencyMS int `yaml:"latency_ms"`
}

// Latency returns the simulated fetch latency as a duration.
func (fc FeedConfig) Latency() time.Duration {
	return time.Duration(fc.LatencyMS) * time.Millisecond
}

// CacheConfig controls the file-based page cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Directory  string `yaml:"directory"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// TTL returns the cache TTL as a duration.
func (cc CacheConfig) TTL() time.Duration {
	return time.Duration(cc.TTLSeconds) * time.Second
}

// LoggingConfig mirrors logging.Config in the file format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Feed: FeedConfig{
			TotalItems:        feed.DefaultTotalItems,
			PageSize:          feed.DefaultPageSize,
			PrefetchThreshold: DefaultPrefetchThreshold,
			LatencyMS:         DefaultLatencyMS,
		},
		Cache: CacheConfig{
			Enabled:   false,
			Directory:  filepath.Join(userHomeDir(), configDirName, "cache"),
			TTLSeconds: int(cache.DefaultTTL / time.Second),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// DefaultPath returns the per-user config file location, honoring the
// EnvConfigPath override.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return filepath.Join(userHomeDir(), configDirName, "config.yaml")
}

// Load reads the config at path, layered over defaults. A missing file
// is not an error: defaults are returned unchanged. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.applyEnv()
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write config file: %w", writeErr)
	}
	return nil
}

// Validate checks the schema version and feed bounds.
func (c *Config) Validate() error {
	version, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, c.Version)
	}

	constraint, err := semver.NewConstraint(SupportedConstraint)
	if err != nil {
		return fmt.Errorf("failed to parse version constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, c.Version, SupportedConstraint)
	}

	if c.Feed.TotalItems < 0 {
		return ErrInvalidTotalItems
	}
	if c.Feed.PageSize < 1 {
		return ErrInvalidPageSize
	}
	if c.Feed.PrefetchThreshold < 0 {
		return ErrInvalidThreshold
	}
	if c.Feed.LatencyMS < 0 {
		return ErrInvalidLatency
	}

	if c.Cache.Enabled {
		if ttlErr := cache.ValidateTTL(c.Cache.TTL()); ttlErr != nil {
			return ttlErr
		}
	}

	return nil
}

// ToLoggingConfig bridges the file format to the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// applyEnv layers environment overrides on top of file values.
func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	c.Cache.Enabled = cache.EnabledFromEnv(c.Cache.Enabled)
	c.Cache.Directory = cache.DirFromEnv(c.Cache.Directory)
	if ttl, err := cache.TTLFromEnv(c.Cache.TTL()); err == nil {
		c.Cache.TTLSeconds = int(ttl / time.Second)
	}
}

// userHomeDir returns the home directory, falling back to the working
// directory when it cannot be resolved.
func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
