package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   directory base URL
//	-k string   directory API key
//	-t int      request timeout in seconds, 0 disables it
//	-d string   local store DSN
//	-p          purge a user's overlay entry when it is deleted
//	-l string   log level
//
// Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-t", "-d", "-l"}, "-p")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DirectoryURL, "a", cfg.DirectoryURL, "directory base URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "directory API key")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "local store DSN (SQLite path or postgres:// URL)")
	fs.BoolVar(&cfg.PurgeOverlayOnDelete, "p", cfg.PurgeOverlayOnDelete, "purge local edits of deleted users")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
