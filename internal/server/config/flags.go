package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-s string   token HMAC secret key
//	-t int      token validity, minutes
//	-w string   login password of the seeded users
//	-n int      users per page
//	-k string   required API key
//	-l string   log level
//
// Duration flags are integers in minutes. Panics on malformed values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-w", "-n", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")
	fs.StringVar(&config.Password, "w", config.Password, "login password")
	fs.IntVar(&config.PerPage, "n", config.PerPage, "users per page")
	fs.StringVar(&config.APIKey, "k", config.APIKey, "required API key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
