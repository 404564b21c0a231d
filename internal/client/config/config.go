// Package config loads runtime configuration for the blog list CLI.
//
// Sources, later ones win: built-in defaults, an optional JSON file selected
// with -c or -config, then command-line flags.
//
//	-a string   base URL of the blog list server
//	-t int      request timeout (seconds)
//
// JSON durations accept "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:3003",
//	  "request_timeout": "10s"
//	}
package config

import "time"

// Config holds runtime settings for the blog list CLI.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3003"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
