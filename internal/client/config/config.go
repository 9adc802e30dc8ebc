package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, with trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local SQLite state database.
//   - MaxQuantity: upper bound for a single cart line's quantity.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	MaxQuantity    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "storefront.db"
	c.MaxQuantity = 50
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
