package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Defaults applied when neither environment nor flags supply a value.
const (
	DefaultURLFile     = "recipe_urls.txt"
	DefaultImageFormat = "crop-642x428"
	DefaultDelay       = 1 * time.Second
	DefaultTimeout     = 30 * time.Second
)

// Config holds everything a run needs. Credentials come from the
// environment (or a .env file loaded by the root command); the rest can be
// overridden per-run with CLI flags.
type Config struct {
	BaseURL     string
	Username    string
	Password    string
	URLFile     string
	ImageFormat string
	Delay       time.Duration
	Timeout     time.Duration
}

// FromEnv builds a Config from TANDOOR_* environment variables, applying
// defaults for everything optional.
func FromEnv() (*Config, error) {
	cfg := &Config{
		BaseURL:     os.Getenv("TANDOOR_URL"),
		Username:    os.Getenv("TANDOOR_USERNAME"),
		Password:    os.Getenv("TANDOOR_PASSWORD"),
		URLFile:     os.Getenv("TANDOOR_URL_FILE"),
		ImageFormat: os.Getenv("TANDOOR_IMAGE_FORMAT"),
		Delay:       DefaultDelay,
		Timeout:     DefaultTimeout,
	}

	if cfg.URLFile == "" {
		cfg.URLFile = DefaultURLFile
	}
	if cfg.ImageFormat == "" {
		cfg.ImageFormat = DefaultImageFormat
	}

	if v := os.Getenv("TANDOOR_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TANDOOR_DELAY %q: %w", v, err)
		}
		cfg.Delay = d
	}
	if v := os.Getenv("TANDOOR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TANDOOR_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Validate checks that everything required for talking to Tandoor is set and
// normalizes the base URL.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")

	if c.BaseURL == "" {
		return fmt.Errorf("tandoor base URL is required (set TANDOOR_URL or --base-url)")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("tandoor base URL must start with http:// or https://, got %q", c.BaseURL)
	}
	if c.Username == "" {
		return fmt.Errorf("TANDOOR_USERNAME environment variable not set")
	}
	if c.Password == "" {
		return fmt.Errorf("TANDOOR_PASSWORD environment variable not set")
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	return nil
}
