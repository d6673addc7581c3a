package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.DirectoryURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "userdesk.db", c.StoreDSN)
	assert.False(t, c.PurgeOverlayOnDelete)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.DirectoryURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"directory_url":   "https://reqres.in/api",
		"request_timeout": "3s",
		"log_level":       "debug",
	})
	os.Args = []string{"testbin", "-c", path, "-t", "7", "-p"}

	cfg := LoadConfig()

	assert.Equal(t, "https://reqres.in/api", cfg.DirectoryURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.PurgeOverlayOnDelete)
	assert.Equal(t, "userdesk.db", cfg.StoreDSN)
}
