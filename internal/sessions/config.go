package sessions

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/render"
)

// Config contains editing session configuration.
type Config struct {
	// ContentPolicy selects how block text is embedded: escape, sanitize, or raw.
	ContentPolicy string `toml:"content_policy"`
	// FallbackURL replaces empty or "#" button urls in rendered HTML.
	FallbackURL string `toml:"fallback_url"`
	// PlaceholderImage is the url given to new image blocks.
	PlaceholderImage string `toml:"placeholder_image"`
	// MaxSessions caps concurrently open sessions. Zero means unlimited.
	MaxSessions int `toml:"max_sessions"`
	// MaxBlocks caps blocks per document. Zero means unlimited.
	MaxBlocks int `toml:"max_blocks"`
	// SessionTTL evicts sessions idle for longer than this duration.
	SessionTTL string `toml:"session_ttl"`
}

// Env maps environment variable names for session configuration.
type Env struct {
	ContentPolicy    string
	FallbackURL      string
	PlaceholderImage string
	MaxSessions      string
	MaxBlocks        string
	SessionTTL       string
}

// SessionTTLDuration parses SessionTTL. An unset or invalid value yields zero.
func (c *Config) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// Policy returns the parsed content policy.
func (c *Config) Policy() render.ContentPolicy {
	p, _ := render.ParseContentPolicy(c.ContentPolicy)
	return p
}

// Finalize applies defaults, loads environment overrides, and validates.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge applies non-zero values from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.ContentPolicy != "" {
		c.ContentPolicy = overlay.ContentPolicy
	}
	if overlay.FallbackURL != "" {
		c.FallbackURL = overlay.FallbackURL
	}
	if overlay.PlaceholderImage != "" {
		c.PlaceholderImage = overlay.PlaceholderImage
	}
	if overlay.MaxSessions != 0 {
		c.MaxSessions = overlay.MaxSessions
	}
	if overlay.MaxBlocks != 0 {
		c.MaxBlocks = overlay.MaxBlocks
	}
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
}

func (c *Config) loadDefaults() {
	if c.ContentPolicy == "" {
		c.ContentPolicy = string(render.PolicyEscape)
	}
	if c.FallbackURL == "" {
		c.FallbackURL = render.DefaultFallbackURL
	}
	if c.PlaceholderImage == "" {
		c.PlaceholderImage = blocks.DefaultPlaceholderImage
	}
	if c.MaxSessions == 0 {
		c.MaxSessions = 100
	}
	if c.MaxBlocks == 0 {
		c.MaxBlocks = 200
	}
	if c.SessionTTL == "" {
		c.SessionTTL = "24h"
	}
}

func (c *Config) loadEnv(env *Env) error {
	if env.ContentPolicy != "" {
		if v := os.Getenv(env.ContentPolicy); v != "" {
			c.ContentPolicy = v
		}
	}
	if env.FallbackURL != "" {
		if v := os.Getenv(env.FallbackURL); v != "" {
			c.FallbackURL = v
		}
	}
	if env.PlaceholderImage != "" {
		if v := os.Getenv(env.PlaceholderImage); v != "" {
			c.PlaceholderImage = v
		}
	}
	if env.MaxSessions != "" {
		if v := os.Getenv(env.MaxSessions); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", env.MaxSessions, err)
			}
			c.MaxSessions = n
		}
	}
	if env.MaxBlocks != "" {
		if v := os.Getenv(env.MaxBlocks); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", env.MaxBlocks, err)
			}
			c.MaxBlocks = n
		}
	}
	if env.SessionTTL != "" {
		if v := os.Getenv(env.SessionTTL); v != "" {
			c.SessionTTL = v
		}
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := render.ParseContentPolicy(c.ContentPolicy); err != nil {
		return fmt.Errorf("content_policy: %w", err)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("max_sessions must not be negative")
	}
	if c.MaxBlocks < 0 {
		return fmt.Errorf("max_blocks must not be negative")
	}
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	return nil
}
