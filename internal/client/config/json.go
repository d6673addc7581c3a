package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
	"github.com/dmitrijs2005/userdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" from a zero value, so a partial file only overrides
// what it names.
type JsonConfig struct {
	DirectoryURL         *string         `json:"directory_url"`
	APIKey               *string         `json:"api_key"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	StoreDSN             *string         `json:"store_dsn"`
	PurgeOverlayOnDelete *bool           `json:"purge_overlay_on_delete"`
	LogLevel             *string         `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file given with -c or
// -config. Nothing happens without the flag. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DirectoryURL != nil {
		cfg.DirectoryURL = *jc.DirectoryURL
	}
	if jc.APIKey != nil {
		cfg.APIKey = *jc.APIKey
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoreDSN != nil {
		cfg.StoreDSN = *jc.StoreDSN
	}
	if jc.PurgeOverlayOnDelete != nil {
		cfg.PurgeOverlayOnDelete = *jc.PurgeOverlayOnDelete
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
