// Package config handles configuration for the stub directory server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the stub directory server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - SecretKey: HMAC secret for signing login tokens (HS256).
//   - TokenValidityDuration: lifetime of issued tokens.
//   - Password: the password every seeded user logs in with.
//   - PerPage: page size of the user listing.
//   - APIKey: when set, required in the x-api-key header.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	Password              string
	PerPage               int
	APIKey                string
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure and meant for local use only.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 60 * time.Minute
	c.Password = "cityslicka"
	c.PerPage = 6
	c.APIKey = ""
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
