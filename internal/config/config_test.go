package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4310 {
		t.Errorf("expected default port 4310, got %d", cfg.Server.Port)
	}
	if cfg.Holdings.Source != "local" {
		t.Errorf("expected default holdings source local, got %s", cfg.Holdings.Source)
	}
	if cfg.Refresh.PortfolioSeconds != 30 {
		t.Errorf("expected portfolio refresh 30s, got %d", cfg.Refresh.PortfolioSeconds)
	}
	if cfg.Refresh.MarketContextSeconds != 600 {
		t.Errorf("expected market context refresh 600s, got %d", cfg.Refresh.MarketContextSeconds)
	}
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("default config should validate, got issues: %v", issues)
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio-portal.toml")
	content := `
environment = "dev"

[server]
port = 9000

[holdings]
source = "server"

[refresh]
sectors_seconds = 15
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFiles(path)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Holdings.Source != "server" {
		t.Errorf("expected holdings source server, got %s", cfg.Holdings.Source)
	}
	// Unset values keep defaults
	if cfg.Refresh.NewsSeconds != 120 {
		t.Errorf("expected news refresh default 120s, got %d", cfg.Refresh.NewsSeconds)
	}
	if cfg.Refresh.SectorsSeconds != 15 {
		t.Errorf("expected sectors refresh 15s, got %d", cfg.Refresh.SectorsSeconds)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/folio-portal.toml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_SERVER_PORT", "7777")
	t.Setenv("FOLIO_API_URL", "http://backend.test")
	t.Setenv("FOLIO_HOLDINGS_SOURCE", "server")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("expected port 7777 from env, got %d", cfg.Server.Port)
	}
	if cfg.API.URL != "http://backend.test" {
		t.Errorf("expected api url from env, got %s", cfg.API.URL)
	}
	if cfg.Holdings.Source != "server" {
		t.Errorf("expected holdings source server from env, got %s", cfg.Holdings.Source)
	}
}

func TestAPIBaseURL(t *testing.T) {
	cfg := NewDefaultConfig()

	// Explicit URL wins, trailing slash trimmed
	cfg.API.URL = "http://example.test/"
	if got := cfg.APIBaseURL(); got != "http://example.test" {
		t.Errorf("expected explicit URL, got %s", got)
	}

	// Dev environment resolves to the local backend
	cfg.API.URL = ""
	cfg.Environment = "dev"
	if got := cfg.APIBaseURL(); got != devAPIURL {
		t.Errorf("expected dev URL %s, got %s", devAPIURL, got)
	}

	// Anything else resolves to the fixed remote endpoint
	cfg.Environment = "prod"
	if got := cfg.APIBaseURL(); got != remoteAPIURL {
		t.Errorf("expected remote URL %s, got %s", remoteAPIURL, got)
	}
	cfg.Environment = "staging"
	if got := cfg.APIBaseURL(); got != remoteAPIURL {
		t.Errorf("expected remote URL for unknown environment, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = 0
	cfg.Holdings.Source = "cloud"
	cfg.Refresh.NewsSeconds = -5

	issues := cfg.Validate()
	if len(issues) != 3 {
		t.Errorf("expected 3 validation issues, got %d: %v", len(issues), issues)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 8123, "0.0.0.0")
	if cfg.Server.Port != 8123 {
		t.Errorf("expected port 8123, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}

	// Zero/empty flags leave config untouched
	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 8123 || cfg.Server.Host != "0.0.0.0" {
		t.Error("zero-value flags must not override config")
	}
}
