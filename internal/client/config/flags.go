package config

import (
	"flag"
	"os"
	"time"

	"github.com/ekozlova/artshop/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the commerce backend
//	-t int      request timeout in seconds
//	-d string   path to the local sqlite database
//
// Only these flags are parsed here; the argument list is pre-filtered with
// flagx.Filter so other components' flags pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.Filter(os.Args[1:], "-a", "-t", "-d")

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the commerce backend")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path to the local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
