package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/foliohq/folio-portal/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Environment string               `toml:"environment"`
	Server      ServerConfig         `toml:"server"`
	API         APIConfig            `toml:"api"`
	Holdings    HoldingsConfig       `toml:"holdings"`
	Refresh     RefreshConfig        `toml:"refresh"`
	Storage     StorageConfig        `toml:"storage"`
	Logging     common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// APIConfig contains market-data backend settings.
// URL, when set, overrides environment-based resolution.
type APIConfig struct {
	URL string `toml:"url"`
}

// HoldingsConfig selects where holdings live.
// Source is "local" (key/value store merged with live prices) or
// "server" (backend portfolio is authoritative).
type HoldingsConfig struct {
	Source string `toml:"source"`
}

// RefreshConfig contains per-resource prefetch intervals in seconds.
type RefreshConfig struct {
	PortfolioSeconds     int `toml:"portfolio_seconds"`
	SectorsSeconds       int `toml:"sectors_seconds"`
	NewsSeconds          int `toml:"news_seconds"`
	MarketContextSeconds int `toml:"market_context_seconds"`
}

// StorageConfig contains storage layer settings.
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig contains BadgerDB-specific settings.
type BadgerConfig struct {
	Path string `toml:"path"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies FOLIO_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FOLIO_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("FOLIO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("FOLIO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if url := os.Getenv("FOLIO_API_URL"); url != "" {
		config.API.URL = url
	}
	if source := os.Getenv("FOLIO_HOLDINGS_SOURCE"); source != "" {
		config.Holdings.Source = source
	}
	if badgerPath := os.Getenv("FOLIO_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsDevMode reports whether the portal runs against the local backend.
func (c *Config) IsDevMode() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "dev" || env == "development"
}

// APIBaseURL resolves the market-data backend base URL.
// An explicit api.url wins; otherwise the dev environment resolves to the
// local backend and any other environment to the fixed remote endpoint.
// This is the entire environment-detection logic.
func (c *Config) APIBaseURL() string {
	if c.API.URL != "" {
		return strings.TrimRight(c.API.URL, "/")
	}
	if c.IsDevMode() {
		return devAPIURL
	}
	return remoteAPIURL
}

// Validate checks mandatory configuration and returns human-readable issues.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}

	switch strings.ToLower(c.Holdings.Source) {
	case "local", "server":
	default:
		issues = append(issues, fmt.Sprintf("holdings.source must be \"local\" or \"server\" (got %q)", c.Holdings.Source))
	}

	if strings.ToLower(c.Holdings.Source) == "local" && c.Storage.Badger.Path == "" {
		issues = append(issues, "storage.badger.path is required when holdings.source is \"local\"")
	}

	for name, v := range map[string]int{
		"refresh.portfolio_seconds":      c.Refresh.PortfolioSeconds,
		"refresh.sectors_seconds":        c.Refresh.SectorsSeconds,
		"refresh.news_seconds":           c.Refresh.NewsSeconds,
		"refresh.market_context_seconds": c.Refresh.MarketContextSeconds,
	} {
		if v <= 0 {
			issues = append(issues, fmt.Sprintf("%s must be a positive number of seconds (got %d)", name, v))
		}
	}

	return issues
}

// LocalHoldings reports whether holdings live in the local store.
func (c *Config) LocalHoldings() bool {
	return strings.ToLower(c.Holdings.Source) != "server"
}
