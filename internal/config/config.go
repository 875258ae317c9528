package config

import "time"

// Config holds runtime settings for the hackline CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the story/user API.
//   - RequestTimeout: per-request timeout for remote calls.
//   - CredentialsPath: path of the SQLite file holding stored credentials.
type Config struct {
	ServerBaseURL   string
	RequestTimeout  time.Duration
	CredentialsPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	c.RequestTimeout = 10 * time.Second
	c.CredentialsPath = "hackline.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
