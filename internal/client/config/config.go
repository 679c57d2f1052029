// Package config handles configuration for the CLI client.
package config

import "time"

// Config holds runtime settings for the Waflow CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST endpoint.
//   - NotificationPollInterval: how often the client polls for notifications.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerEndpointAddr       string
	NotificationPollInterval time.Duration
	RequestTimeout           time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.NotificationPollInterval = 30 * time.Second
	c.RequestTimeout = 10 * time.Second
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
