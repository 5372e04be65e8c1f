package config

import "time"

// Config holds runtime settings for the storefront client.
//
// Fields:
//   - APIBaseURL: base URL of the commerce backend, no trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - LocalDBPath: sqlite file for client-side state (favorites).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LocalDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.LocalDBPath = "artshop.db"
}

// LoadConfig builds a Config from defaults, then a JSON file (if given via
// -c/-config), then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
