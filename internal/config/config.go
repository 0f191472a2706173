// Package config loads the vault CLI settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// apiKeyPlaceholder is the value sample .env files ship with; treating
// it as a real key would send it to the API.
const apiKeyPlaceholder = "your_api_key_here"

// Config holds the environment-driven settings for the vault CLI.
type Config struct {
	Email    string `env:"SL_EMAIL"`
	Password string `env:"SL_PASSWORD"`
	Device   string `env:"SL_DEVICE"`
	APIKey   string `env:"SL_API_KEY"`
	BaseURL  string `env:"SL_BASE_URL"`
}

// Load reads .env when present, then the process environment. A missing
// .env file is not an error; real environment variables still apply.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return parse()
}

// parse populates a Config from the current process environment and
// validates it.
func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == apiKeyPlaceholder {
		return nil, errors.New("SL_API_KEY contains the placeholder value, set a real API key")
	}

	if cfg.Device == "" {
		cfg.Device = "vault-cli-" + uuid.NewString()[:8]
	}

	return cfg, nil
}

// HasAPIKey reports whether a usable API key was configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// RequireLogin validates the fields the password-login flow needs.
func (c *Config) RequireLogin() error {
	if c.Email == "" || c.Password == "" {
		return errors.New("SL_EMAIL and SL_PASSWORD must be set")
	}
	return nil
}
