package config

import "time"

// Config holds runtime settings for the userdesk console.
//
// Fields:
//   - DirectoryURL: base URL of the remote user directory API.
//   - APIKey: optional value of the x-api-key header.
//   - RequestTimeout: limit for one directory request; 0 disables it.
//   - StoreDSN: SQLite file path or postgres:// URL of the local store.
//   - PurgeOverlayOnDelete: drop local edits of a user once it is deleted.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DirectoryURL         string
	APIKey               string
	RequestTimeout       time.Duration
	StoreDSN             string
	PurgeOverlayOnDelete bool
	LogLevel             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DirectoryURL = "http://127.0.0.1:8080/api"
	c.APIKey = ""
	c.RequestTimeout = 10 * time.Second
	c.StoreDSN = "userdesk.db"
	c.PurgeOverlayOnDelete = false
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
