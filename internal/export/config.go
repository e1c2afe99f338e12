package export

import (
	"fmt"
	"net/mail"
	"os"

	"github.com/docker/go-units"
)

// Config contains export packaging configuration.
type Config struct {
	// From is the sender header written into .eml exports.
	From string `toml:"from"`
	// Subject is the subject header written into .eml exports.
	Subject string `toml:"subject"`
	// MaxSize is a human-readable limit on artifact size, e.g. "5MB".
	MaxSize string `toml:"max_size"`
	maxSize int64
}

// Env maps environment variable names for export configuration.
type Env struct {
	From    string
	Subject string
	MaxSize string
}

// MaxSizeBytes returns the parsed max_size. It is zero until Finalize or
// Merge has parsed a value.
func (c *Config) MaxSizeBytes() int64 {
	return c.maxSize
}

// Finalize applies defaults, loads environment overrides, and validates.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.From != "" {
		c.From = overlay.From
	}
	if overlay.Subject != "" {
		c.Subject = overlay.Subject
	}
	if overlay.MaxSize != "" {
		c.MaxSize = overlay.MaxSize
	}
}

func (c *Config) loadDefaults() {
	if c.From == "" {
		c.From = "Mail Designer <designer@example.com>"
	}
	if c.Subject == "" {
		c.Subject = "Email Template"
	}
	if c.MaxSize == "" {
		c.MaxSize = "5MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.From != "" {
		if v := os.Getenv(env.From); v != "" {
			c.From = v
		}
	}
	if env.Subject != "" {
		if v := os.Getenv(env.Subject); v != "" {
			c.Subject = v
		}
	}
	if env.MaxSize != "" {
		if v := os.Getenv(env.MaxSize); v != "" {
			c.MaxSize = v
		}
	}
}

func (c *Config) validate() error {
	if _, err := mail.ParseAddress(c.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}

	size, err := units.FromHumanSize(c.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid max_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_size must be positive")
	}
	c.maxSize = size

	return nil
}
