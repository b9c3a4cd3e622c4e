package config

import "github.com/foliohq/folio-portal/internal/common"

// Backend endpoints used when api.url is not set explicitly.
const (
	devAPIURL    = "http://localhost:8000"
	remoteAPIURL = "https://folio-api.onrender.com"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4310,
			Host: "localhost",
		},
		API: APIConfig{
			URL: "",
		},
		Holdings: HoldingsConfig{
			Source: "local",
		},
		Refresh: RefreshConfig{
			PortfolioSeconds:     30,
			SectorsSeconds:       60,
			NewsSeconds:          120,
			MarketContextSeconds: 600,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/folio",
			},
		},
		Logging: common.LoggingConfig{
			Level: "info",
		},
	}
}
