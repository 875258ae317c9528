package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with values from environment variables:
//
//	HACKLINE_SERVER_URL    — base URL of the story/user API
//	HACKLINE_TIMEOUT       — request timeout, e.g. "5s"
//	HACKLINE_CREDENTIALS   — path to the credentials database
//
// Unset or malformed values leave the current config untouched.
func parseEnv(cfg *Config) {
	if v := os.Getenv("HACKLINE_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("HACKLINE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("HACKLINE_CREDENTIALS"); v != "" {
		cfg.CredentialsPath = v
	}
}
