// Package config loads application settings from an optional YAML file,
// with environment variables (optionally via a .env file) taking
// precedence. Every setting has a usable default; a missing config file is
// not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultStoragePath   = "portfolio.json"
	DefaultLanguage      = "en"
	DefaultCheckoutDelay = 1500 * time.Millisecond
)

// Config holds all runtime settings.
type Config struct {
	// StoragePath is the durable key-value store file.
	StoragePath string `yaml:"storage_path"`
	// Language selects the seed catalog on first run ("en" or "es").
	Language string `yaml:"language"`
	// CheckoutDelay is the checkout pacing delay.
	CheckoutDelay time.Duration `yaml:"checkout_delay"`
	// Verbose switches logging to debug level.
	Verbose bool `yaml:"verbose"`
}

// Load reads settings from path (skipped when empty or absent), then
// applies environment overrides: PORTFOLIO_STORAGE_PATH,
// PORTFOLIO_LANGUAGE, PORTFOLIO_CHECKOUT_DELAY, PORTFOLIO_VERBOSE.
// A .env file in the working directory is honored when present.
func Load(path string) (*Config, error) {
	// Missing .env just means the environment is already set.
	_ = godotenv.Load()

	cfg := &Config{
		StoragePath:   DefaultStoragePath,
		Language:      DefaultLanguage,
		CheckoutDelay: DefaultCheckoutDelay,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORTFOLIO_STORAGE_PATH"); v != "" {
		c.StoragePath = v
	}
	if v := os.Getenv("PORTFOLIO_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("PORTFOLIO_CHECKOUT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse PORTFOLIO_CHECKOUT_DELAY %q: %w", v, err)
		}
		c.CheckoutDelay = d
	}
	if v := os.Getenv("PORTFOLIO_VERBOSE"); v != "" {
		c.Verbose = v == "true" || v == "1"
	}
	return nil
}
