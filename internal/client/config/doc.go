// Package config loads runtime configuration for the userdesk console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   directory base URL
//	-k string   directory API key (sent as x-api-key)
//	-t int      request timeout (seconds, 0 = none)
//	-d string   local store DSN
//	-p          purge overlay entry on delete
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "directory_url": "https://reqres.in/api",
//	  "api_key": "reqres-free-v1",
//	  "request_timeout": "5s",
//	  "store_dsn": "userdesk.db",
//	  "purge_overlay_on_delete": false,
//	  "log_level": "info"
//	}
package config
