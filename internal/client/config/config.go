package config

import "time"

// Config holds runtime settings for the attendance CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - AccessToken: teacher bearer token; prompted for when empty.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	AccessToken         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.AccessToken = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and config file, and finally command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
