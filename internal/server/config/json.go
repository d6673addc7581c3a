package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
	"github.com/dmitrijs2005/userdesk/internal/timex"
)

// JsonConfig is the JSON form of Config. Zero values leave the Config
// field as it was; token_validity_duration accepts "1h" or nanoseconds.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	Password              string         `json:"password"`
	PerPage               int            `json:"per_page"`
	APIKey                string         `json:"api_key"`
	LogLevel              string         `json:"log_level"`
}

// parseJson loads values from the JSON file given with -c or -config.
// Panics if the file cannot be read or parsed.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.Password, c.Password)
	setString(&config.APIKey, c.APIKey)
	setString(&config.LogLevel, c.LogLevel)
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.PerPage != 0 {
		config.PerPage = c.PerPage
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
